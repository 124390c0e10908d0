package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"

	"pfeifer.dev/dbwd/cereal/dbw"
	"pfeifer.dev/dbwd/settings"
)

type MessageCreator[T any] func(dbw.Event) (T, error)

type Publisher[T any] struct {
	Pub     gomsgq.MsgqPublisher
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	msg, obj, err := NewEventMessage(valid, p.creator)
	if err != nil {
		panic(err)
	}
	return msg, obj
}

// NewEventMessage builds an event wrapping a fresh payload made by creator.
func NewEventMessage[T any](valid bool, creator MessageCreator[T]) (msg *capnp.Message, obj T, err error) {
	arena := capnp.SingleSegment(nil)
	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create message")
	}
	event, err := dbw.NewRootEvent(seg)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create event")
	}
	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)
	obj, err = creator(event)
	if err != nil {
		return nil, obj, errors.Wrap(err, "could not create payload")
	}
	return msg, obj, nil
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)
	publisher.Pub = pub
	publisher.creator = creator
	return publisher
}
