package jsondom_test

import (
	"testing"

	"github.com/KimNorgaard/go-jsondom"
	"github.com/stretchr/testify/require"
)

func TestAccessors_HappyPath(t *testing.T) {
	doc, err := jsondom.Parse(`{
		"s": "text",
		"b": false,
		"i32": 7,
		"i64": 7000000000,
		"f": 1.5,
		"o": {},
		"a": [1],
		"n": null
	}`)
	require.NoError(t, err)

	s, err := doc.GetString("s")
	require.NoError(t, err)
	require.Equal(t, "text", s)

	b, err := doc.GetBool("b")
	require.NoError(t, err)
	require.False(t, b)

	i32, err := doc.GetInt32("i32")
	require.NoError(t, err)
	require.Equal(t, int32(7), i32)

	i64, err := doc.GetInt64("i64")
	require.NoError(t, err)
	require.Equal(t, int64(7000000000), i64)

	f, err := doc.GetFloat64("f")
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	o, err := doc.GetObject("o")
	require.NoError(t, err)
	require.Equal(t, 0, o.Len())

	a, err := doc.GetArray("a")
	require.NoError(t, err)
	require.Len(t, a, 1)

	null, err := doc.IsNull("n")
	require.NoError(t, err)
	require.True(t, null)

	null, err = doc.IsNull("s")
	require.NoError(t, err)
	require.False(t, null)
}

func TestAccessors_ExactTagChecks(t *testing.T) {
	doc, err := jsondom.Parse(`{"i32": 7, "i64": 7000000000, "f": 5.0, "s": "x"}`)
	require.NoError(t, err)

	t.Run("int64 does not satisfy GetInt32", func(t *testing.T) {
		_, err := doc.GetInt32("i64")
		var tmErr *jsondom.TypeMismatchError
		require.ErrorAs(t, err, &tmErr)
		require.Equal(t, jsondom.KindInt32, tmErr.Want)
		require.Equal(t, jsondom.KindInt64, tmErr.Got)
	})

	t.Run("int32 does not satisfy GetInt64", func(t *testing.T) {
		_, err := doc.GetInt64("i32")
		var tmErr *jsondom.TypeMismatchError
		require.ErrorAs(t, err, &tmErr)
		require.Equal(t, jsondom.KindInt64, tmErr.Want)
		require.Equal(t, jsondom.KindInt32, tmErr.Got)
	})

	t.Run("integral float stays float", func(t *testing.T) {
		_, err := doc.GetInt32("f")
		var tmErr *jsondom.TypeMismatchError
		require.ErrorAs(t, err, &tmErr)
		require.Equal(t, jsondom.KindFloat64, tmErr.Got)
	})

	t.Run("error message names both kinds", func(t *testing.T) {
		_, err := doc.GetString("i64")
		require.EqualError(t, err, `jsondom: key "i64" holds int64, want string`)
	})

	t.Run("every accessor rejects a string", func(t *testing.T) {
		_, err := doc.GetBool("s")
		require.Error(t, err)
		_, err = doc.GetInt32("s")
		require.Error(t, err)
		_, err = doc.GetInt64("s")
		require.Error(t, err)
		_, err = doc.GetFloat64("s")
		require.Error(t, err)
		_, err = doc.GetObject("s")
		require.Error(t, err)
		_, err = doc.GetArray("s")
		require.Error(t, err)
	})
}

func TestAccessors_MissingKey(t *testing.T) {
	doc := jsondom.NewObject()

	_, err := doc.GetString("gone")
	var notFound *jsondom.KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "gone", notFound.Key)

	_, err = doc.IsNull("gone")
	require.ErrorAs(t, err, &notFound)
}

type logLevel string

const (
	levelDebug logLevel = "debug"
	levelInfo  logLevel = "info"
	levelWarn  logLevel = "warn"
)

func TestGetEnum(t *testing.T) {
	doc, err := jsondom.Parse(`{"level": "info", "mode": "turbo", "count": 3}`)
	require.NoError(t, err)

	t.Run("valid member", func(t *testing.T) {
		lvl, err := jsondom.GetEnum(doc, "level", levelDebug, levelInfo, levelWarn)
		require.NoError(t, err)
		require.Equal(t, levelInfo, lvl)
	})

	t.Run("value outside the set", func(t *testing.T) {
		_, err := jsondom.GetEnum(doc, "mode", levelDebug, levelInfo, levelWarn)
		require.Error(t, err)
		require.Contains(t, err.Error(), `"turbo"`)
	})

	t.Run("no set accepts any string", func(t *testing.T) {
		got, err := jsondom.GetEnum[logLevel](doc, "mode")
		require.NoError(t, err)
		require.Equal(t, logLevel("turbo"), got)
	})

	t.Run("non-string value", func(t *testing.T) {
		_, err := jsondom.GetEnum(doc, "count", levelDebug)
		var tmErr *jsondom.TypeMismatchError
		require.ErrorAs(t, err, &tmErr)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := jsondom.GetEnum(doc, "gone", levelDebug)
		var notFound *jsondom.KeyNotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}
