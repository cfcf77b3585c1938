package initialize

import (
	"io"
	"os"

	"assethook/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// default console logger until config is loaded
	global.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func InitLogger(level, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			w = io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stdout}, f)
		}
	}
	global.Logger = log.Output(w).Level(lvl)
}
