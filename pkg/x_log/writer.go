// file: nset/pkg/x_log/writer.go
package x_log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

//
// ---------- Sink Assembly ----------

// newWriter builds the combined sink for cfg: an optional console
// writer and an optional rotating file writer.
func newWriter(cfg *Config) io.Writer {
	var sinks []io.Writer

	if cfg.ToConsole {
		sinks = append(sinks, consoleWriter(cfg, os.Stderr))
	}

	if cfg.ToFile && cfg.LogFile != "" {
		var fw io.Writer = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.ColoredFile {
			fw = styledWriter(cfg, fw)
		}
		sinks = append(sinks, fw)
	}

	switch len(sinks) {
	case 0:
		return os.Stderr
	case 1:
		return sinks[0]
	default:
		return zerolog.MultiLevelWriter(sinks...)
	}
}

// consoleWriter returns a styled writer when out is a terminal,
// otherwise a plain uncolored console writer.
func consoleWriter(cfg *Config, out *os.File) io.Writer {
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return styledWriter(cfg, out)
	}
	w := zerolog.NewConsoleWriter()
	w.Out = out
	w.NoColor = true
	return w
}

func styledWriter(cfg *Config, out io.Writer) io.Writer {
	styles := DefaultStylesByName(cfg.Style)
	styles.Out = out
	return ConsoleWriterWithStyles(styles)
}
