package observability

import (
	"github.com/DavidRaab/website-sub000/logger"
	"github.com/DavidRaab/website-sub000/seq"
)

// Trace returns a sequence that logs every pulled element and the end of
// each enumeration at debug level. When log has debug disabled, s is
// returned as is.
func Trace[T any](s seq.Seq[T], log *logger.Logger, name string) seq.Seq[T] {
	if log == nil || !log.DebugEnabled() {
		return s
	}
	return seq.FromFunc(func() seq.Enumerator[T] {
		log.Debug("enumeration started", logger.Fields(logger.FieldSequence, name))
		return &tracedEnum[T]{src: s.Enumerate(), log: log, name: name}
	})
}

type tracedEnum[T any] struct {
	src   seq.Enumerator[T]
	log   *logger.Logger
	name  string
	index int
	done  bool
}

func (e *tracedEnum[T]) Next() (T, bool) {
	if e.done {
		var zero T
		return zero, false
	}
	v, ok := e.src.Next()
	if !ok {
		e.done = true
		e.log.Debug("enumeration finished", logger.Fields(
			logger.FieldSequence, e.name,
			logger.FieldPulls, e.index,
		))
		return v, false
	}
	e.log.Debug("element pulled", logger.Fields(
		logger.FieldSequence, e.name,
		logger.FieldIndex, e.index,
		logger.FieldValue, v,
	))
	e.index++
	return v, true
}
