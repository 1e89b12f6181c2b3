package menu

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Command struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// Декоратор тайминга: лог + строка time;key;status;duration в timingsFile.
// Пустой timingsFile отключает запись в файл.
func WithTiming(c Command, log zerolog.Logger, timingsFile string) Command {
	return Command{
		Key:  c.Key,
		Name: c.Name,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := c.Run(ctx)
			dur := time.Since(start).Round(time.Millisecond)

			status := "OK"
			if err != nil {
				status = "ERR"
			}
			log.Debug().Str("key", c.Key).Str("status", status).Dur("took", dur).Msg("command")

			if timingsFile != "" {
				if f, e := os.OpenFile(timingsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); e == nil {
					_, _ = fmt.Fprintf(f, "%s;%s;%s;%s\n", time.Now().UTC().Format(time.RFC3339), c.Key, status, dur)
					_ = f.Close()
				} else {
					log.Warn().Err(e).Str("file", timingsFile).Msg("timings log unavailable")
				}
			}
			return err
		},
	}
}
