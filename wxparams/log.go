package wxparams

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// ErrUnknownLogLevel はログレベルの名前が不明な場合に返されます。
var ErrUnknownLogLevel = errors.New("wxparams: unknown log level")

const loggerName = "wxparams"

func getLogger() logging.Logger {
	return logging.GetLogger(loggerName)
}

// ログレベル設定
//
// level は "DEBUG", "INFO", "WARN", "ERROR", "CRITICAL" のいずれかです。
func SetLogLevel(level string) error {
	var lv logging.LogLevelType
	switch strings.ToUpper(level) {
	case "DEBUG":
		lv = logging.LevelDebug
	case "INFO":
		lv = logging.LevelInfo
	case "WARN":
		lv = logging.LevelWarn
	case "ERROR":
		lv = logging.LevelError
	case "CRITICAL":
		lv = logging.LevelCritical
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}
	getLogger().SetLevel(lv)
	return nil
}
