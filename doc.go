// Package simdata is the data model of entity properties, preferences and preference
// commands for platforms, beams, gates, lasers, projectors, LOB groups and custom
// rendering entities.
//
// Every type is a field list: each field is optional, nested field lists are owned by
// their parent and created on demand, and vectors have no absent state apart from being
// empty. Types are generated from schema/simdata.simdata and implement
// structs.FieldList.
//
// Fields can be reached through the generated accessors, or at runtime through a
// reflect.Reflection by dotted path ("commonPrefs.labelPrefs.draw") or by TagStack. The
// Make* functions return the Reflection of each type:
//
//	r := simdata.MakeScenarioProperty()
//	prop := &simdata.ScenarioProperties{}
//	if err := r.SetValue(prop, reflect.ValueOfUint32(1000), "dataLimitPoints"); err != nil {
//		// handle
//	}
//	v, ok, err := r.GetValue(prop, "dataLimitPoints")
//
// A dotted path is split on every access. Resolve paths used on hot paths to a TagStack
// once with Reflection.TagStack or PreferencesTagStack and reuse it.
package simdata

//go:generate go run ./cmd/simdatac gen schema/simdata.simdata
