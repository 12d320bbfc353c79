package battle

import "github.com/go-logr/logr"

var internalLogger = logr.Logger{}

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("battle")
}

var turnLogger = func() logr.Logger {
	return internalLogger.WithName("turn")
}

var switchLogger = func() logr.Logger {
	return internalLogger.WithName("switch")
}

var eotLogger = func() logr.Logger {
	return internalLogger.WithName("end_of_turn")
}
