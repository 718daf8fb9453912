package simdata

import (
	"fmt"

	"github.com/bearlytools/simdata/languages/go/errors"
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
	"github.com/gostdlib/base/concurrency/sync"
)

// ErrInvalidObjectType is returned when an ObjectType does not name an entity kind
// that has preferences.
var ErrInvalidObjectType = errors.New("invalid object type")

// MakePreferences returns the Reflection of the preferences of t. AllObjects returns
// the Reflection of CommonPrefs, which every entity kind shares.
func MakePreferences(t ObjectType) (*reflect.Reflection, error) {
	switch t {
	case Platform:
		return MakePlatformPreferences(), nil
	case Beam:
		return MakeBeamPreferences(), nil
	case Gate:
		return MakeGatePreferences(), nil
	case Laser:
		return MakeLaserPreferences(), nil
	case Projector:
		return MakeProjectorPreferences(), nil
	case LobGroup:
		return MakeLobGroupPreferences(), nil
	case CustomRendering:
		return MakeCustomRenderingPreferences(), nil
	case AllObjects:
		return MakeCommonPreferences(), nil
	}
	return nil, fmt.Errorf("MakePreferences(%s): %w", t, ErrInvalidObjectType)
}

// NewPreferences returns an empty preferences instance for t. AllObjects returns a
// *CommonPrefs.
func NewPreferences(t ObjectType) (structs.FieldList, error) {
	switch t {
	case Platform:
		return &PlatformPrefs{}, nil
	case Beam:
		return &BeamPrefs{}, nil
	case Gate:
		return &GatePrefs{}, nil
	case Laser:
		return &LaserPrefs{}, nil
	case Projector:
		return &ProjectorPrefs{}, nil
	case LobGroup:
		return &LobGroupPrefs{}, nil
	case CustomRendering:
		return &CustomRenderingPrefs{}, nil
	case AllObjects:
		return &CommonPrefs{}, nil
	}
	return nil, fmt.Errorf("NewPreferences(%s): %w", t, ErrInvalidObjectType)
}

// MakePreferencesTagStackMap returns the TagStackMap of the preferences of t.
func MakePreferencesTagStackMap(t ObjectType) (reflect.TagStackMap, error) {
	r, err := MakePreferences(t)
	if err != nil {
		return nil, err
	}
	return reflect.MakeTagStackMap(r), nil
}

var tagStacks = tagStackCache{m: map[ObjectType]reflect.TagStackMap{}}

type tagStackCache struct {
	mu sync.Mutex
	m  map[ObjectType]reflect.TagStackMap
}

func (c *tagStackCache) get(t ObjectType) (reflect.TagStackMap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.m[t]; ok {
		return m, nil
	}
	m, err := MakePreferencesTagStackMap(t)
	if err != nil {
		return nil, err
	}
	c.m[t] = m
	return m, nil
}

// PreferencesTagStack returns the TagStack of path in the preferences of t. The
// TagStackMap of each type is built on first use and kept for the life of the process.
// path may name a leaf or a nested field list. It is safe for concurrent use.
func PreferencesTagStack(path string, t ObjectType) (reflect.TagStack, error) {
	m, err := tagStacks.get(t)
	if err != nil {
		return nil, err
	}
	return m.Lookup(path)
}
