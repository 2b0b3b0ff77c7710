package ecstasy_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/ecstasy"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/chubbymaggie/ecstasy/pkg/palette"
)

func TestRenderPlainTextRoundTrip(t *testing.T) {
	for _, input := range []string{
		"",
		"plain text",
		"no markers, no escapes",
		"multi\nline\ntext",
	} {
		out, err := ecstasy.Render(input, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}

func TestRenderEscapingSuppressesTag(t *testing.T) {
	out, err := ecstasy.Render(`\`+"`bold{x}", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "`bold{x}", out)
}

func TestRenderEscapedBracePair(t *testing.T) {
	// A bare open brace and an escaped one both pair with the close
	for _, input := range []string{"{x}", `\{x}`} {
		out, err := ecstasy.Render(input, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "{x}", out)
	}
}

func TestRenderNestingIsolation(t *testing.T) {
	out, err := ecstasy.Render("`red{A`blue{B}C}", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mA\x1b[34mB\x1b[0;31mC\x1b[0m", out)
}

func TestRenderPositionalOrder(t *testing.T) {
	out, err := ecstasy.Render("`${} `${}", []string{"first", "second"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first second", out)
}

func TestRenderMissingArgument(t *testing.T) {
	_, err := ecstasy.Render("`${}", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
}

func TestRenderUnusedArgumentNonFatal(t *testing.T) {
	b, err := ecstasy.New(nil, nil)
	require.NoError(t, err)

	result, err := b.RenderDetailed("plain text", []string{"unused"})
	require.NoError(t, err)
	assert.Equal(t, "plain text", result.Output)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, errors.ErrUnusedArgument, result.Warnings[0].Code)
}

func TestRenderUnusedArgumentStrict(t *testing.T) {
	opts := config.Default()
	opts.StrictUnusedArguments = true

	_, err := ecstasy.Render("plain text", []string{"unused"}, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnusedArgument))
}

func TestRenderUnmatchedClose(t *testing.T) {
	_, err := ecstasy.Render("abc`red{x}}", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNesting))
	assert.Equal(t, 10, errors.GetOffset(err))
}

func TestRenderMalformedTag(t *testing.T) {
	_, err := ecstasy.Render("text `red", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedTag))
	assert.Equal(t, 5, errors.GetOffset(err))
}

func TestRenderAttributeConflict(t *testing.T) {
	_, err := ecstasy.Render("`+:+{x}", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAttributeConflict))
}

func TestRenderNeverReturnsPartialOutput(t *testing.T) {
	out, err := ecstasy.Render("`red{fine} `${}", nil, nil)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := config.Default()
	opts.Escape = opts.OpenDelim

	_, err := ecstasy.New(nil, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestCustomOptionsEndToEnd(t *testing.T) {
	opts := config.Default()
	opts.OpenDelim = '<'
	opts.BodyOpen = '['
	opts.BodyClose = ']'
	opts.Separator = ';'

	out, err := ecstasy.Render("<red;bold[x]", nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31;1mx\x1b[0m", out)
}

func TestCustomResolverEndToEnd(t *testing.T) {
	table := palette.Table{"alert": {Category: palette.Foreground, Params: "91"}}
	b, err := ecstasy.New(table, nil)
	require.NoError(t, err)

	out, err := b.Render("`alert{now}", nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[91mnow\x1b[0m", out)
}

func TestConcurrentRenders(t *testing.T) {
	b, err := ecstasy.New(nil, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			arg := fmt.Sprintf("goroutine-%d", i)
			out, err := b.Render("`red{A`blue{`${}}C}", []string{arg})
			assert.NoError(t, err)
			assert.Contains(t, out, arg)
		}(i)
	}
	wg.Wait()
}
