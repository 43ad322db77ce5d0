package get_packs

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
