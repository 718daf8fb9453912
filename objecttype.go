package simdata

//go:generate stringer -type=ObjectType -linecomment

// ObjectType is a bit flag naming the kind of an entity.
type ObjectType uint8

const (
	NoObject        ObjectType = 0x00 // NONE
	Platform        ObjectType = 0x01 // PLATFORM
	Beam            ObjectType = 0x02 // BEAM
	Gate            ObjectType = 0x04 // GATE
	Laser           ObjectType = 0x08 // LASER
	Projector       ObjectType = 0x10 // PROJECTOR
	LobGroup        ObjectType = 0x20 // LOB_GROUP
	CustomRendering ObjectType = 0x40 // CUSTOM_RENDERING
	AllObjects      ObjectType = 0x7F // ALL
)

// EntityTypes are the single entity kinds, in bit order.
var EntityTypes = []ObjectType{Platform, Beam, Gate, Laser, Projector, LobGroup, CustomRendering}

// Has reports if every bit of o is set in t.
func (t ObjectType) Has(o ObjectType) bool {
	return t&o == o
}
