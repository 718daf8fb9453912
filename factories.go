package simdata

import (
	"github.com/bearlytools/simdata/languages/go/reflect"
	"github.com/bearlytools/simdata/languages/go/structs"
)

// Every Make function returns a new Reflection that the caller owns. Building one walks
// the whole descriptor tree, so callers on hot paths should keep the result.

// MakeBeamProperty returns the Reflection of BeamProperties.
func MakeBeamProperty() *reflect.Reflection {
	return structs.NewReflection(beamPropertiesDescr())
}

// MakeClassificationProperty returns the Reflection of ClassificationProperties.
func MakeClassificationProperty() *reflect.Reflection {
	return structs.NewReflection(classificationPropertiesDescr())
}

// MakeCoordinateFrameProperty returns the Reflection of CoordinateFrameProperties.
func MakeCoordinateFrameProperty() *reflect.Reflection {
	return structs.NewReflection(coordinateFramePropertiesDescr())
}

// MakeCustomRenderingProperty returns the Reflection of CustomRenderingProperties.
func MakeCustomRenderingProperty() *reflect.Reflection {
	return structs.NewReflection(customRenderingPropertiesDescr())
}

// MakeGateProperty returns the Reflection of GateProperties.
func MakeGateProperty() *reflect.Reflection {
	return structs.NewReflection(gatePropertiesDescr())
}

// MakeLaserProperty returns the Reflection of LaserProperties.
func MakeLaserProperty() *reflect.Reflection {
	return structs.NewReflection(laserPropertiesDescr())
}

// MakeLobGroupProperty returns the Reflection of LobGroupProperties.
func MakeLobGroupProperty() *reflect.Reflection {
	return structs.NewReflection(lobGroupPropertiesDescr())
}

// MakePlatformProperty returns the Reflection of PlatformProperties.
func MakePlatformProperty() *reflect.Reflection {
	return structs.NewReflection(platformPropertiesDescr())
}

// MakeProjectorProperty returns the Reflection of ProjectorProperties.
func MakeProjectorProperty() *reflect.Reflection {
	return structs.NewReflection(projectorPropertiesDescr())
}

// MakeReferenceProperty returns the Reflection of ReferenceProperties.
func MakeReferenceProperty() *reflect.Reflection {
	return structs.NewReflection(referencePropertiesDescr())
}

// MakeScenarioProperty returns the Reflection of ScenarioProperties.
func MakeScenarioProperty() *reflect.Reflection {
	return structs.NewReflection(scenarioPropertiesDescr())
}

// MakeSoundFileProperty returns the Reflection of SoundFileProperties.
func MakeSoundFileProperty() *reflect.Reflection {
	return structs.NewReflection(soundFilePropertiesDescr())
}

// MakeTangentPlaneOffsetsProperty returns the Reflection of TangentPlaneOffsetsProperties.
func MakeTangentPlaneOffsetsProperty() *reflect.Reflection {
	return structs.NewReflection(tangentPlaneOffsetsPropertiesDescr())
}

// MakeAntennaPatternsPreferences returns the Reflection of AntennaPatterns.
func MakeAntennaPatternsPreferences() *reflect.Reflection {
	return structs.NewReflection(antennaPatternsDescr())
}

// MakeBeamPreferences returns the Reflection of BeamPrefs.
func MakeBeamPreferences() *reflect.Reflection {
	return structs.NewReflection(beamPrefsDescr())
}

// MakeBodyOrientationPreferences returns the Reflection of BodyOrientation.
func MakeBodyOrientationPreferences() *reflect.Reflection {
	return structs.NewReflection(bodyOrientationDescr())
}

// MakeCommonPreferences returns the Reflection of CommonPrefs.
func MakeCommonPreferences() *reflect.Reflection {
	return structs.NewReflection(commonPrefsDescr())
}

// MakeCustomRenderingPreferences returns the Reflection of CustomRenderingPrefs.
func MakeCustomRenderingPreferences() *reflect.Reflection {
	return structs.NewReflection(customRenderingPrefsDescr())
}

// MakeDisplayFieldsPreferences returns the Reflection of DisplayFields.
func MakeDisplayFieldsPreferences() *reflect.Reflection {
	return structs.NewReflection(displayFieldsDescr())
}

// MakeGatePreferences returns the Reflection of GatePrefs.
func MakeGatePreferences() *reflect.Reflection {
	return structs.NewReflection(gatePrefsDescr())
}

// MakeGridSettingsPreferences returns the Reflection of GridSettings.
func MakeGridSettingsPreferences() *reflect.Reflection {
	return structs.NewReflection(gridSettingsDescr())
}

// MakeLabelPreferences returns the Reflection of LabelPrefs.
func MakeLabelPreferences() *reflect.Reflection {
	return structs.NewReflection(labelPrefsDescr())
}

// MakeLaserPreferences returns the Reflection of LaserPrefs.
func MakeLaserPreferences() *reflect.Reflection {
	return structs.NewReflection(laserPrefsDescr())
}

// MakeLobGroupPreferences returns the Reflection of LobGroupPrefs.
func MakeLobGroupPreferences() *reflect.Reflection {
	return structs.NewReflection(lobGroupPrefsDescr())
}

// MakeLocalGridPreferences returns the Reflection of LocalGridPrefs.
func MakeLocalGridPreferences() *reflect.Reflection {
	return structs.NewReflection(localGridPrefsDescr())
}

// MakePlatformPreferences returns the Reflection of PlatformPrefs.
func MakePlatformPreferences() *reflect.Reflection {
	return structs.NewReflection(platformPrefsDescr())
}

// MakePositionPreferences returns the Reflection of Position.
func MakePositionPreferences() *reflect.Reflection {
	return structs.NewReflection(positionDescr())
}

// MakeProjectorPreferences returns the Reflection of ProjectorPrefs.
func MakeProjectorPreferences() *reflect.Reflection {
	return structs.NewReflection(projectorPrefsDescr())
}

// MakeSpeedRingPreferences returns the Reflection of SpeedRing.
func MakeSpeedRingPreferences() *reflect.Reflection {
	return structs.NewReflection(speedRingDescr())
}

// MakeTimeTickPreferences returns the Reflection of TimeTickPrefs.
func MakeTimeTickPreferences() *reflect.Reflection {
	return structs.NewReflection(timeTickPrefsDescr())
}

// MakeTrackPreferences returns the Reflection of TrackPrefs.
func MakeTrackPreferences() *reflect.Reflection {
	return structs.NewReflection(trackPrefsDescr())
}

// MakeBeamCommand returns the Reflection of BeamCommand.
func MakeBeamCommand() *reflect.Reflection {
	return structs.NewReflection(beamCommandDescr())
}

// MakeCustomRenderingCommand returns the Reflection of CustomRenderingCommand.
func MakeCustomRenderingCommand() *reflect.Reflection {
	return structs.NewReflection(customRenderingCommandDescr())
}

// MakeGateCommand returns the Reflection of GateCommand.
func MakeGateCommand() *reflect.Reflection {
	return structs.NewReflection(gateCommandDescr())
}

// MakeLaserCommand returns the Reflection of LaserCommand.
func MakeLaserCommand() *reflect.Reflection {
	return structs.NewReflection(laserCommandDescr())
}

// MakeLobGroupCommand returns the Reflection of LobGroupCommand.
func MakeLobGroupCommand() *reflect.Reflection {
	return structs.NewReflection(lobGroupCommandDescr())
}

// MakePlatformCommand returns the Reflection of PlatformCommand.
func MakePlatformCommand() *reflect.Reflection {
	return structs.NewReflection(platformCommandDescr())
}

// MakeProjectorCommand returns the Reflection of ProjectorCommand.
func MakeProjectorCommand() *reflect.Reflection {
	return structs.NewReflection(projectorCommandDescr())
}
