package tree

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pathtree/internal/logger"
)

func TestInvalidDelimiterKeepsPriorConfig(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Configure(WithDelimiter(".")))

	err := tr.Configure(WithDelimiter(""))
	require.ErrorIs(t, err, ErrInvalidDelimiter)

	delim, err := tr.Option(OptionDelimiter)
	require.NoError(t, err)
	require.Equal(t, ".", delim)
}

func TestConfigureIsAtomic(t *testing.T) {
	tr := New()
	err := tr.Configure(WithLogger(slog.Default()), WithDelimiter(""))
	require.ErrorIs(t, err, ErrInvalidDelimiter)

	l, err := tr.Option(OptionLogger)
	require.NoError(t, err)
	require.Nil(t, l)
}

func TestDuplicateOption(t *testing.T) {
	tr := New()
	err := tr.Configure(WithDelimiter("."), WithDelimiter(":"))
	require.ErrorIs(t, err, ErrDuplicateOption)

	var te *Error
	require.True(t, errors.As(err, &te))
	require.Equal(t, ErrKindConfig, te.Kind)

	delim, _ := tr.Option(OptionDelimiter)
	require.Equal(t, DefaultDelimiter, delim)
}

func TestUnknownOption(t *testing.T) {
	tr := New()
	_, err := tr.Option("colour")
	require.ErrorIs(t, err, ErrUnknownOption)

	err = tr.Configure(WithDefault("colour"))
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestWithDefaultRestoresConstructionConfig(t *testing.T) {
	f, err := NewFactory(WithDelimiter("|"))
	require.NoError(t, err)
	tr := f.New()

	require.NoError(t, tr.Configure(WithDelimiter(".")))
	require.NoError(t, tr.Configure(WithDefault(OptionDelimiter)))

	delim, _ := tr.Option(OptionDelimiter)
	require.Equal(t, "|", delim)

	require.NoError(t, f.Configure(WithDefault(OptionDelimiter)))
	delim, _ = f.Option(OptionDelimiter)
	require.Equal(t, DefaultDelimiter, delim)
}

func TestFactoryReconfigureDoesNotAffectBuiltTrees(t *testing.T) {
	f, err := NewFactory()
	require.NoError(t, err)
	before := f.New()

	require.NoError(t, f.Configure(WithDelimiter(".")))
	after := f.Of("x")

	d1, _ := before.Option(OptionDelimiter)
	d2, _ := after.Option(OptionDelimiter)
	require.Equal(t, "/", d1)
	require.Equal(t, ".", d2)
	require.Equal(t, ".", f.Config().Delimiter)
}

func TestNewFactoryRejectsInvalidOptions(t *testing.T) {
	_, err := NewFactory(WithDelimiter(""))
	require.ErrorIs(t, err, ErrInvalidDelimiter)

	f, err := NewFactory()
	require.NoError(t, err)
	require.ErrorIs(t, f.Configure(WithUndefined(nil), WithUndefined(nil)), ErrDuplicateOption)
}

func TestChildConfigureOverridesParent(t *testing.T) {
	tr := New()
	child := tr.Get("a").(*Tree)
	require.NoError(t, child.Configure(WithDelimiter(".")))

	child.Set("x.y", 1)
	require.Equal(t, 1, tr.Get("a/x/y"))

	rootDelim, _ := tr.Option(OptionDelimiter)
	require.Equal(t, "/", rootDelim)

	require.NoError(t, child.Configure(WithDefault(OptionDelimiter)))
	childDelim, _ := child.Option(OptionDelimiter)
	require.Equal(t, "/", childDelim)
}

func TestDefaultHandlerLogsNotice(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f, err := NewFactory(WithLogger(l))
	require.NoError(t, err)
	tr := f.New().Set("leaf", 1)

	require.Nil(t, tr.Get("leaf/x"))
	require.Contains(t, out.String(), "undefined offset")
	require.Contains(t, out.String(), "[leaf][x]")
}

func TestPackageLoggerNamesNotice(t *testing.T) {
	prev := logger.L
	t.Cleanup(func() { logger.L = prev })
	var out bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Enabled: true, Output: &out}))

	tr := New().Set("leaf", 1)
	require.Nil(t, tr.Get("leaf/x"))
	require.Contains(t, out.String(), "level=NOTICE")
	require.Contains(t, out.String(), "key=[leaf][x]")
}

func TestErrorString(t *testing.T) {
	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
	require.Equal(t, "config", ErrKindConfig.String())
	require.Equal(t, "ErrKind(9)", ErrKind(9).String())

	err := wrapErr(ErrUnknownOption, "%q", "x")
	require.Equal(t, `tree: unknown option: "x"`, err.Error())
	require.False(t, errors.Is(err, ErrInvalidKey))
}
