package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogRoute | LogGame | LogSystem

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogRoute
	LogGame
	LogSystem
	LogIO
)

// LogSink receives every message that passes the level and category filter.
// It defaults to println and can be swapped in tests.
var LogSink = func(txt string) {
	println(txt)
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	LogSink(txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogRouteInfo(txt string) {
	log(LogRoute, LogLevelInfo, txt)
}

func LogRouteDebug(txt string) {
	log(LogRoute, LogLevelDebug, txt)
}

func LogRouteWarning(txt string) {
	log(LogRoute, LogLevelWarning, txt)
}

func LogGameInfo(txt string) {
	log(LogGame, LogLevelInfo, txt)
}

func LogGameDebug(txt string) {
	log(LogGame, LogLevelDebug, txt)
}

func LogGameError(txt string) {
	log(LogGame, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}
