package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"

	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/settings"
)

type Reader[T any] func(dbw.Event) (T, error)

type Subscriber[T any] struct {
	Sub    gomsgq.MsgqSubscriber
	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	return Decode(s.Sub.Read(), s.reader)
}

func (s *Subscriber[T]) Close() {
	err, err2 := s.Sub.Msgq.Close()
	if err != nil {
		panic(err)
	}
	if err2 != nil {
		panic(err2)
	}
}

// Decode unpacks an event and reads its payload. Empty or malformed data is
// reported as an unsuccessful read.
func Decode[T any](data []byte, reader Reader[T]) (obj T, success bool) {
	if len(data) == 0 {
		return obj, false
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, false
	}
	// lanes can be large, allow us to read the whole message
	msg.ResetReadLimit(math.MaxUint64)
	event, err := dbw.ReadRootEvent(msg)
	if err != nil || !event.HasPayload() {
		return obj, false
	}
	obj, err = reader(event)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)
	subscriber.Sub = sub
	subscriber.reader = reader
	return subscriber
}
