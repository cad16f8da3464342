package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is replaced by Init; until then it discards everything.
var Log = zap.NewNop().Sugar()

func Init(level string, env string) error {
	conf := zap.NewProductionConfig()
	conf.OutputPaths = []string{"stdout"}
	if env == "dev" {
		conf.OutputPaths = []string{"stderr"}
		conf.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		conf.Encoding = "console"
	}
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	conf.Level = zap.NewAtomicLevelAt(lvl)

	l, err := conf.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
