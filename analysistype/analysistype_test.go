package analysistype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysid/analysistype"
)

func TestParse(t *testing.T) {
	cases := map[string]analysistype.Type{
		"Simple":               analysistype.Simple,
		"Elevator":             analysistype.Elevator,
		"Arm":                  analysistype.Arm,
		"Drivetrain":           analysistype.Drivetrain,
		"Drivetrain (Angular)": analysistype.DrivetrainAngular,
	}
	for tag, want := range cases {
		got, ok := analysistype.Parse(tag)
		require.True(t, ok, tag)
		require.Equal(t, want, got, tag)
	}

	_, ok := analysistype.Parse("Nonsense")
	require.False(t, ok)
}

func TestArityTable(t *testing.T) {
	require.Equal(t, 3, analysistype.Simple.IndependentVariables())
	require.Equal(t, 4, analysistype.Simple.RawColumns())
	require.Equal(t, 4, analysistype.Elevator.IndependentVariables())
	require.Equal(t, 4, analysistype.Arm.IndependentVariables())
	require.Equal(t, 3, analysistype.Drivetrain.IndependentVariables())
	require.Equal(t, 9, analysistype.Drivetrain.RawColumns())
	require.Equal(t, 9, analysistype.DrivetrainAngular.RawColumns())
}

func TestIsArmIsElevator(t *testing.T) {
	require.True(t, analysistype.IsArm(analysistype.Arm))
	require.False(t, analysistype.IsArm(analysistype.Simple))
	require.True(t, analysistype.IsElevator(analysistype.Elevator))
	require.False(t, analysistype.IsElevator(analysistype.Arm))
}
