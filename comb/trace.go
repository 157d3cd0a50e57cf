package comb

import (
	"github.com/tliron/commonlog"
)

// TraceLogger is the name of the logger Trace writes to.
const TraceLogger = "pcomb.trace"

// Trace wraps p so that every attempt is logged at debug level under name.
// When debug logging is off the wrapper only costs a level check.
func Trace[T comparable, O any](name string, p Parser[T, O]) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		log := commonlog.GetLogger(TraceLogger)
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(c)
		}
		log.Debugf("%s: enter at %d", name, c.Position())
		v, next, err := p.Parse(c)
		if err != nil {
			leaf := Resolve(err)
			log.Debugf("%s: failed, furthest at %d: %s", name, leaf.Position(), leaf.Error())
			return v, next, err
		}
		log.Debugf("%s: matched [%d, %d)", name, c.Position(), next.Position())
		return v, next, nil
	})
}
