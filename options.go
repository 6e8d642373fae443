package hybriddeque

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrInvalidOptions = errors.New("invalid deque options")

type Options struct {
	// the number of slots per block, fixed for the lifetime of a deque
	BlockSize int

	// takes precedence over the file logger below
	Logger *zerolog.Logger

	// the file logger is enabled only when LogFile is set
	LogDir        string
	LogFile       string
	LogMaxSize    uint64
	LogMaxBackups uint64
	LogLevel      int8
}

func (o *Options) Init() {
	if o.BlockSize == 0 {
		o.BlockSize = DefaultBlockSize
	}

	if o.LogMaxSize == 0 {
		o.LogMaxSize = DefaultLogMaxSize
	}

	if o.LogMaxBackups == 0 {
		o.LogMaxBackups = DefaultLogMaxBackups
	}
}

func (o *Options) Validate() error {
	if o.BlockSize < MinBlockSize {
		return errors.Join(
			fmt.Errorf("block size %d less than %d", o.BlockSize, MinBlockSize),
			ErrInvalidOptions,
		)
	}

	if o.LogLevel < int8(zerolog.TraceLevel) || o.LogLevel > int8(zerolog.Disabled) {
		return errors.Join(fmt.Errorf("unknown log level %d", o.LogLevel), ErrInvalidOptions)
	}

	return nil
}

func (o *Options) newLogger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	if o.LogFile == "" {
		logger := zerolog.Nop()
		return &logger
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(o.LogDir, o.LogFile),
		MaxSize:    int(o.LogMaxSize),
		MaxBackups: int(o.LogMaxBackups),
		Compress:   false,
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	w := zerolog.ConsoleWriter{
		NoColor:    true,
		Out:        file,
		TimeFormat: "2006-01-02 15:04:05",
	}

	logger := zerolog.New(w).With().Timestamp().Caller().Logger().Level(
		zerolog.Level(o.LogLevel),
	)

	return &logger
}
