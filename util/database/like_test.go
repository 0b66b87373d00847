package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikePrefix(t *testing.T) {
	require.Equal(t, "ban%", LikePrefix("ban"))
	require.Equal(t, `50\%%`, LikePrefix("50%"))
	require.Equal(t, `a\_b%`, LikePrefix("a_b"))
	require.Equal(t, `c\\d%`, LikePrefix(`c\d`))
	require.Equal(t, "%", LikePrefix(""))
}
