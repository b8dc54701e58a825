package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default and is configured by the CLI. Each package should create
// its own sub-logger from it.
var GlobalLogger *Logger

// Logger describes a custom logging object that can log events to any arbitrary channel in structured, unstructured,
// or unstructured colored format.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// context describes the key-value pairs attached to every event of this logger
	context map[string]string

	// contextKeys describes the keys of context in the order they were added
	contextKeys []string

	// structuredLogger describes a logger that will be used to output structured logs to any arbitrary channel.
	structuredLogger zerolog.Logger

	// structuredWriters describes the various channels that the output from the structuredLogger will go to.
	structuredWriters []io.Writer

	// unstructuredLogger describes a logger that will be used to stream un-colorized, unstructured output.
	unstructuredLogger zerolog.Logger

	// unstructuredWriters describes the various channels that the output from the unstructuredLogger will go to.
	unstructuredWriters []io.Writer

	// unstructuredColorLogger describes a logger that will be used to stream colorized, unstructured output.
	unstructuredColorLogger zerolog.Logger

	// unstructuredColorWriters describes the various channels that the output from the unstructuredColoredLogger will
	// go to.
	unstructuredColorWriters []io.Writer
}

// LogFormat describes what format to log in
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format
	UNSTRUCTURED LogFormat = "unstructured"
)

// StructuredLogInfo describes a key-value mapping that can be used to log structured data
type StructuredLogInfo map[string]any

// NewLogger will create a new Logger object with a specific log level. By default, a logger that is instantiated
// with this function is not usable until a log channel is added. To add or remove channels that the logger streams
// logs to, call the Logger.AddWriter and Logger.RemoveWriter functions.
func NewLogger(level zerolog.Level) *Logger {
	return &Logger{
		level:                    level,
		context:                  make(map[string]string),
		contextKeys:              make([]string, 0),
		structuredLogger:         zerolog.New(nil).Level(zerolog.Disabled),
		structuredWriters:        make([]io.Writer, 0),
		unstructuredLogger:       zerolog.New(nil).Level(zerolog.Disabled),
		unstructuredWriters:      make([]io.Writer, 0),
		unstructuredColorLogger:  zerolog.New(nil).Level(zerolog.Disabled),
		unstructuredColorWriters: make([]io.Writer, 0),
	}
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of this
// is for each package to have their own unique logger so that parsing of logs is "grep-able" based on some key. Writers
// added to the parent afterwards are not seen by the sub-logger.
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	subLogger := &Logger{
		level:                    l.level,
		context:                  make(map[string]string, len(l.context)+1),
		contextKeys:              make([]string, 0, len(l.contextKeys)+1),
		structuredWriters:        append([]io.Writer(nil), l.structuredWriters...),
		unstructuredWriters:      append([]io.Writer(nil), l.unstructuredWriters...),
		unstructuredColorWriters: append([]io.Writer(nil), l.unstructuredColorWriters...),
	}
	for _, k := range l.contextKeys {
		subLogger.setContext(k, l.context[k])
	}
	subLogger.setContext(key, value)
	subLogger.rebuild()
	return subLogger
}

// setContext adds or replaces a key-value pair attached to every event.
func (l *Logger) setContext(key string, value string) {
	if _, exists := l.context[key]; !exists {
		l.contextKeys = append(l.contextKeys, key)
	}
	l.context[key] = value
}

// AddWriter will add a writer to which log output will go to. If the format is structured then the writer will
// receive JSON output. If the format is unstructured and colored is true, the writer receives colorized console
// output. Adding a writer twice is a no-op.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for _, w := range *writers {
		if w == writer {
			return
		}
	}
	*writers = append(*writers, writer)
	l.rebuild()
}

// RemoveWriter will remove a writer from the list of writers that the logger manages. The writer will be removed
// from the list that matches the format and colored flag. If the writer does not exist, this function is a no-op.
func (l *Logger) RemoveWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for i, w := range *writers {
		if w == writer {
			*writers = append((*writers)[:i], (*writers)[i+1:]...)
			l.rebuild()
			return
		}
	}
}

// writersFor returns the writer list that holds writers of the given format.
func (l *Logger) writersFor(format LogFormat, colored bool) *[]io.Writer {
	if format == STRUCTURED {
		return &l.structuredWriters
	} else if colored {
		return &l.unstructuredColorWriters
	}
	return &l.unstructuredWriters
}

// rebuild recreates the underlying zerolog loggers from the current writers, level, and context.
func (l *Logger) rebuild() {
	// Structured output is JSON with a timestamp
	structuredContext := zerolog.New(zerolog.MultiLevelWriter(l.structuredWriters...)).Level(l.level).With().Timestamp()

	// Unstructured output goes through console writers
	unstructuredWriters := make([]io.Writer, 0, len(l.unstructuredWriters))
	for _, w := range l.unstructuredWriters {
		unstructuredWriters = append(unstructuredWriters, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w, NoColor: true}, l.level))
	}
	unstructuredContext := zerolog.New(zerolog.MultiLevelWriter(unstructuredWriters...)).Level(l.level).With()

	colorWriters := make([]io.Writer, 0, len(l.unstructuredColorWriters))
	for _, w := range l.unstructuredColorWriters {
		colorWriters = append(colorWriters, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w, NoColor: false}, l.level))
	}
	colorContext := zerolog.New(zerolog.MultiLevelWriter(colorWriters...)).Level(l.level).With()

	for _, key := range l.contextKeys {
		structuredContext = structuredContext.Str(key, l.context[key])
		unstructuredContext = unstructuredContext.Str(key, l.context[key])
		colorContext = colorContext.Str(key, l.context[key])
	}

	l.structuredLogger = disableIfEmpty(structuredContext.Logger(), l.structuredWriters)
	l.unstructuredLogger = disableIfEmpty(unstructuredContext.Logger(), l.unstructuredWriters)
	l.unstructuredColorLogger = disableIfEmpty(colorContext.Logger(), l.unstructuredColorWriters)
}

// disableIfEmpty disables a logger which has nowhere to write to.
func disableIfEmpty(logger zerolog.Logger, writers []io.Writer) zerolog.Logger {
	if len(writers) == 0 {
		return logger.Level(zerolog.Disabled)
	}
	return logger
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.rebuild()
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(args ...any) {
	l.log(zerolog.TraceLevel, args...)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(args ...any) {
	l.log(zerolog.DebugLevel, args...)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(args ...any) {
	l.log(zerolog.InfoLevel, args...)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(args ...any) {
	l.log(zerolog.WarnLevel, args...)
}

// Error is a wrapper function that will log an error event
func (l *Logger) Error(args ...any) {
	l.log(zerolog.ErrorLevel, args...)
}

// Panic is a wrapper function that will log a panic event
func (l *Logger) Panic(args ...any) {
	l.log(zerolog.PanicLevel, args...)
}

// log builds the messages from args and sends an event of the given level to every channel.
func (l *Logger) log(level zerolog.Level, args ...any) {
	// Build the messages and retrieve any error or associated structured log info
	colorMsg, noColorMsg, err, info := buildMsgs(args...)

	// Instantiate log events. A panic event is only raised once, after every channel received it
	structuredLog := l.structuredLogger.WithLevel(level)
	unstructuredLog := l.unstructuredLogger.WithLevel(level)
	colorLog := l.unstructuredColorLogger.WithLevel(level)

	// Chain the error, with a stack trace when debugging or panicking
	withStack := l.level <= zerolog.DebugLevel || level == zerolog.PanicLevel
	chainError(structuredLog, err, withStack)
	chainError(unstructuredLog, err, withStack)
	chainError(colorLog, err, withStack)

	// If we are provided a structured log info object, add that as a key-value pair to the events
	if info != nil {
		structuredLog.Any("info", info)
		unstructuredLog.Any("info", info)
		colorLog.Any("info", info)
	}

	// Send off the logs
	structuredLog.Msg(noColorMsg)
	unstructuredLog.Msg(noColorMsg)
	colorLog.Msg(colorMsg)

	if level == zerolog.PanicLevel {
		panic(noColorMsg)
	}
}

// buildMsgs describes a function that takes in a variadic list of arguments of any type and returns two strings and,
// optionally, an error and a StructuredLogInfo object. The first string will be a colorized-string that can be used for
// console logging while the second string will be a non-colorized one that can be used for file/structured logging.
// The error and the StructuredLogInfo can be used to add additional context to log messages
func buildMsgs(args ...any) (string, string, error, StructuredLogInfo) {
	// Guard clause
	if len(args) == 0 {
		return "", "", nil, nil
	}

	// Initialize the base color context, the string buffers and the structured log info object
	colorCtx := colors.Reset
	colorOutput := make([]string, 0)
	noColorOutput := make([]string, 0)
	var info StructuredLogInfo
	var err error

	// Iterate through each argument in the list and switch on type
	for _, arg := range args {
		switch t := arg.(type) {
		case colors.ColorFunc:
			// If the argument is a color function, switch the current color context
			colorCtx = t
		case *LogBuffer:
			// Flatten buffers into the surrounding message
			bufColor, bufNoColor, bufErr, bufInfo := buildMsgs(t.Args()...)
			colorOutput = append(colorOutput, bufColor)
			noColorOutput = append(noColorOutput, bufNoColor)
			if bufErr != nil {
				err = bufErr
			}
			if bufInfo != nil {
				info = bufInfo
			}
		case StructuredLogInfo:
			// Note that only one structured log info can be provided for each log message
			info = t
		case error:
			// Note that only one error can be provided for each log message
			err = t
		default:
			// In the base case, append the object to the two string buffers. The colored string buffer will have the
			// current color context applied to it.
			colorOutput = append(colorOutput, colorCtx(t))
			noColorOutput = append(noColorOutput, fmt.Sprintf("%v", t))
		}
	}

	return strings.Join(colorOutput, ""), strings.Join(noColorOutput, ""), err, info
}

// chainError is a helper function that takes in a *zerolog.Event and chains an error to it. If withStack is true, a
// stack trace is added to the event as well.
func chainError(event *zerolog.Event, err error, withStack bool) {
	if err == nil {
		return
	}
	if withStack {
		event.Stack()
	}
	event.Err(err)
}

// setupDefaultFormatting will update the console logger's formatting to the contractgen standard
func setupDefaultFormatting(writer zerolog.ConsoleWriter, level zerolog.Level) zerolog.ConsoleWriter {
	// Get rid of the timestamp for console output
	writer.FormatTimestamp = func(i interface{}) string {
		return ""
	}

	// Messages are colorized while they are built, never by the writer
	writer.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return fmt.Sprintf("%v", i)
	}

	// We will define a custom format for each level
	writer.FormatLevel = func(i any) string {
		levelStr, _ := i.(string)
		parsed, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			return levelStr
		}

		// Uncolored writers still get the glyph for info events
		colorize := func(f colors.ColorFunc, s string) string {
			if writer.NoColor {
				return s
			}
			return f(s)
		}

		switch parsed {
		case zerolog.TraceLevel:
			return colorize(colors.CyanBold, zerolog.LevelTraceValue)
		case zerolog.DebugLevel:
			return colorize(colors.BlueBold, zerolog.LevelDebugValue)
		case zerolog.InfoLevel:
			return colorize(colors.GreenBold, colors.LEFT_ARROW)
		case zerolog.WarnLevel:
			return colorize(colors.YellowBold, zerolog.LevelWarnValue)
		case zerolog.ErrorLevel:
			return colorize(colors.RedBold, zerolog.LevelErrorValue)
		case zerolog.FatalLevel:
			return colorize(colors.RedBold, zerolog.LevelFatalValue)
		case zerolog.PanicLevel:
			return colorize(colors.RedBold, zerolog.LevelPanicValue)
		default:
			return levelStr
		}
	}

	// If we are above debug level, we want to get rid of the `module` component when logging to console
	if level > zerolog.DebugLevel {
		writer.FieldsExclude = []string{"module", "run"}
	}

	return writer
}
