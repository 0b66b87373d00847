package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePrefix turns user input into a LIKE/ILIKE pattern matching values
// that start with it. Wildcards in the input match literally.
func LikePrefix(s string) string {
	return likeEscaper.Replace(s) + "%"
}
