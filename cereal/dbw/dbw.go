// Package dbw holds the capnp accessors for the messages in dbw.capnp. The
// offsets below follow the capnp layout of that schema.
package dbw

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type Event capnp.Struct

var eventSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, eventSize)
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) Segment() *capnp.Segment {
	return capnp.Struct(s).Segment()
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) HasPayload() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) Payload() (capnp.Ptr, error) {
	return capnp.Struct(s).Ptr(0)
}

func (s Event) SetPayload(v capnp.Ptr) error {
	return capnp.Struct(s).SetPtr(0, v)
}

func (s Event) payloadStruct() (capnp.Struct, error) {
	p, err := s.Payload()
	return p.Struct(), err
}

func (s Event) Pose() (Pose, error) {
	st, err := s.payloadStruct()
	return Pose(st), err
}

func (s Event) NewPose() (Pose, error) {
	st, err := capnp.NewStruct(s.Segment(), poseSize)
	if err != nil {
		return Pose{}, err
	}
	return Pose(st), s.SetPayload(st.ToPtr())
}

func (s Event) Twist() (Twist, error) {
	st, err := s.payloadStruct()
	return Twist(st), err
}

func (s Event) NewTwist() (Twist, error) {
	st, err := capnp.NewStruct(s.Segment(), twistSize)
	if err != nil {
		return Twist{}, err
	}
	return Twist(st), s.SetPayload(st.ToPtr())
}

func (s Event) Lane() (Lane, error) {
	st, err := s.payloadStruct()
	return Lane(st), err
}

func (s Event) NewLane() (Lane, error) {
	st, err := capnp.NewStruct(s.Segment(), laneSize)
	if err != nil {
		return Lane{}, err
	}
	return Lane(st), s.SetPayload(st.ToPtr())
}

func (s Event) TrafficWaypoint() (TrafficWaypoint, error) {
	st, err := s.payloadStruct()
	return TrafficWaypoint(st), err
}

func (s Event) NewTrafficWaypoint() (TrafficWaypoint, error) {
	st, err := capnp.NewStruct(s.Segment(), trafficWaypointSize)
	if err != nil {
		return TrafficWaypoint{}, err
	}
	return TrafficWaypoint(st), s.SetPayload(st.ToPtr())
}

func (s Event) DbwEnabled() (DbwEnabled, error) {
	st, err := s.payloadStruct()
	return DbwEnabled(st), err
}

func (s Event) NewDbwEnabled() (DbwEnabled, error) {
	st, err := capnp.NewStruct(s.Segment(), dbwEnabledSize)
	if err != nil {
		return DbwEnabled{}, err
	}
	return DbwEnabled(st), s.SetPayload(st.ToPtr())
}

func (s Event) Command() (Command, error) {
	st, err := s.payloadStruct()
	return Command(st), err
}

func (s Event) NewCommand() (Command, error) {
	st, err := capnp.NewStruct(s.Segment(), commandSize)
	if err != nil {
		return Command{}, err
	}
	return Command(st), s.SetPayload(st.ToPtr())
}

func (s Event) Status() (Status, error) {
	st, err := s.payloadStruct()
	return Status(st), err
}

func (s Event) NewStatus() (Status, error) {
	st, err := capnp.NewStruct(s.Segment(), statusSize)
	if err != nil {
		return Status{}, err
	}
	return Status(st), s.SetPayload(st.ToPtr())
}

func (s Event) DbwIn() (DbwIn, error) {
	st, err := s.payloadStruct()
	return DbwIn(st), err
}

func (s Event) NewDbwIn() (DbwIn, error) {
	st, err := capnp.NewStruct(s.Segment(), dbwInSize)
	if err != nil {
		return DbwIn{}, err
	}
	return DbwIn(st), s.SetPayload(st.ToPtr())
}

type Pose capnp.Struct

var poseSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

func (s Pose) X() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(0)) }
func (s Pose) SetX(v float64) { capnp.Struct(s).SetUint64(0, math.Float64bits(v)) }
func (s Pose) Y() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(8)) }
func (s Pose) SetY(v float64) { capnp.Struct(s).SetUint64(8, math.Float64bits(v)) }
func (s Pose) Z() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(16)) }
func (s Pose) SetZ(v float64) { capnp.Struct(s).SetUint64(16, math.Float64bits(v)) }

type Twist capnp.Struct

var twistSize = capnp.ObjectSize{DataSize: 16, PointerCount: 0}

func (s Twist) Linear() float64      { return math.Float64frombits(capnp.Struct(s).Uint64(0)) }
func (s Twist) SetLinear(v float64)  { capnp.Struct(s).SetUint64(0, math.Float64bits(v)) }
func (s Twist) Angular() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(8)) }
func (s Twist) SetAngular(v float64) { capnp.Struct(s).SetUint64(8, math.Float64bits(v)) }

type Waypoint capnp.Struct

var waypointSize = capnp.ObjectSize{DataSize: 32, PointerCount: 0}

func (s Waypoint) X() float64         { return math.Float64frombits(capnp.Struct(s).Uint64(0)) }
func (s Waypoint) SetX(v float64)     { capnp.Struct(s).SetUint64(0, math.Float64bits(v)) }
func (s Waypoint) Y() float64         { return math.Float64frombits(capnp.Struct(s).Uint64(8)) }
func (s Waypoint) SetY(v float64)     { capnp.Struct(s).SetUint64(8, math.Float64bits(v)) }
func (s Waypoint) Z() float64         { return math.Float64frombits(capnp.Struct(s).Uint64(16)) }
func (s Waypoint) SetZ(v float64)     { capnp.Struct(s).SetUint64(16, math.Float64bits(v)) }
func (s Waypoint) Speed() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(24)) }
func (s Waypoint) SetSpeed(v float64) { capnp.Struct(s).SetUint64(24, math.Float64bits(v)) }

type Waypoint_List = capnp.StructList[Waypoint]

func NewWaypoint_List(s *capnp.Segment, sz int32) (Waypoint_List, error) {
	l, err := capnp.NewCompositeList(s, waypointSize, sz)
	return capnp.StructList[Waypoint](l), err
}

type Lane capnp.Struct

var laneSize = capnp.ObjectSize{DataSize: 8, PointerCount: 1}

func (s Lane) Waypoints() (Waypoint_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Waypoint_List(p.List()), err
}

func (s Lane) NewWaypoints(n int32) (Waypoint_List, error) {
	l, err := NewWaypoint_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return Waypoint_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

func (s Lane) ClosestIndex() int32     { return int32(capnp.Struct(s).Uint32(0)) }
func (s Lane) SetClosestIndex(v int32) { capnp.Struct(s).SetUint32(0, uint32(v)) }
func (s Lane) BrakeIndex() int32       { return int32(capnp.Struct(s).Uint32(4)) }
func (s Lane) SetBrakeIndex(v int32)   { capnp.Struct(s).SetUint32(4, uint32(v)) }

type TrafficWaypoint capnp.Struct

var trafficWaypointSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func (s TrafficWaypoint) Index() int32     { return int32(capnp.Struct(s).Uint32(0)) }
func (s TrafficWaypoint) SetIndex(v int32) { capnp.Struct(s).SetUint32(0, uint32(v)) }

type DbwEnabled capnp.Struct

var dbwEnabledSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func (s DbwEnabled) Enabled() bool     { return capnp.Struct(s).Bit(0) }
func (s DbwEnabled) SetEnabled(v bool) { capnp.Struct(s).SetBit(0, v) }

type Command capnp.Struct

var commandSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

func (s Command) Throttle() float64     { return math.Float64frombits(capnp.Struct(s).Uint64(0)) }
func (s Command) SetThrottle(v float64) { capnp.Struct(s).SetUint64(0, math.Float64bits(v)) }
func (s Command) Brake() float64        { return math.Float64frombits(capnp.Struct(s).Uint64(8)) }
func (s Command) SetBrake(v float64)    { capnp.Struct(s).SetUint64(8, math.Float64bits(v)) }
func (s Command) Steer() float64        { return math.Float64frombits(capnp.Struct(s).Uint64(16)) }
func (s Command) SetSteer(v float64)    { capnp.Struct(s).SetUint64(16, math.Float64bits(v)) }

type Status capnp.Struct

var statusSize = capnp.ObjectSize{DataSize: 40, PointerCount: 0}

func (s Status) Ticks() uint64           { return capnp.Struct(s).Uint64(0) }
func (s Status) SetTicks(v uint64)       { capnp.Struct(s).SetUint64(0, v) }
func (s Status) Skipped() uint64         { return capnp.Struct(s).Uint64(8) }
func (s Status) SetSkipped(v uint64)     { capnp.Struct(s).SetUint64(8, v) }
func (s Status) Enabled() bool           { return capnp.Struct(s).Bit(128) }
func (s Status) SetEnabled(v bool)       { capnp.Struct(s).SetBit(128, v) }
func (s Status) ClosestIndex() int32     { return int32(capnp.Struct(s).Uint32(20)) }
func (s Status) SetClosestIndex(v int32) { capnp.Struct(s).SetUint32(20, uint32(v)) }
func (s Status) BrakeIndex() int32       { return int32(capnp.Struct(s).Uint32(24)) }
func (s Status) SetBrakeIndex(v int32)   { capnp.Struct(s).SetUint32(24, uint32(v)) }
func (s Status) TickPeriod() float32     { return math.Float32frombits(capnp.Struct(s).Uint32(28)) }
func (s Status) SetTickPeriod(v float32) { capnp.Struct(s).SetUint32(28, math.Float32bits(v)) }
func (s Status) RouteLength() int32      { return int32(capnp.Struct(s).Uint32(32)) }
func (s Status) SetRouteLength(v int32)  { capnp.Struct(s).SetUint32(32, uint32(v)) }

type DbwInputType uint16

const (
	DbwInputType_reloadSettings      DbwInputType = 0
	DbwInputType_saveSettings        DbwInputType = 1
	DbwInputType_loadDefaultSettings DbwInputType = 2
	DbwInputType_setLogLevel         DbwInputType = 3
	DbwInputType_setEnabled          DbwInputType = 4
)

func (c DbwInputType) String() string {
	switch c {
	case DbwInputType_reloadSettings:
		return "reloadSettings"
	case DbwInputType_saveSettings:
		return "saveSettings"
	case DbwInputType_loadDefaultSettings:
		return "loadDefaultSettings"
	case DbwInputType_setLogLevel:
		return "setLogLevel"
	case DbwInputType_setEnabled:
		return "setEnabled"
	default:
		return ""
	}
}

type DbwIn capnp.Struct

var dbwInSize = capnp.ObjectSize{DataSize: 8, PointerCount: 1}

func (s DbwIn) Type() DbwInputType     { return DbwInputType(capnp.Struct(s).Uint16(0)) }
func (s DbwIn) SetType(v DbwInputType) { capnp.Struct(s).SetUint16(0, uint16(v)) }
func (s DbwIn) Float() float32         { return math.Float32frombits(capnp.Struct(s).Uint32(4)) }
func (s DbwIn) SetFloat(v float32)     { capnp.Struct(s).SetUint32(4, math.Float32bits(v)) }
func (s DbwIn) Bool() bool             { return capnp.Struct(s).Bit(16) }
func (s DbwIn) SetBool(v bool)         { capnp.Struct(s).SetBit(16, v) }

func (s DbwIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s DbwIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}
