package engine

import "strings"

// DataType names a series a user can put in an analytics window.
type DataType string

const (
	DataTypeWeight            DataType = "weight"
	DataTypeBodyFat           DataType = "bodyFat"
	DataTypeCalories          DataType = "calories"
	DataTypeProtein           DataType = "protein"
	DataTypeFat               DataType = "fat"
	DataTypeCarbs             DataType = "carbs"
	DataTypeTotalVolume       DataType = "totalVolume"
	DataTypeExerciseVolume    DataType = "exercise_volume"
	DataTypeExercise1RM       DataType = "exercise_1rm"
	DataTypeExerciseMaxWeight DataType = "exercise_maxWeight"
)

type DataTypeInfo struct {
	Type  DataType `json:"type"`
	Label string   `json:"label"`
}

var dataTypes = []DataTypeInfo{
	{Type: DataTypeWeight, Label: "Weight"},
	{Type: DataTypeBodyFat, Label: "Body Fat"},
	{Type: DataTypeCalories, Label: "Calorie Intake"},
	{Type: DataTypeProtein, Label: "Protein"},
	{Type: DataTypeFat, Label: "Fat"},
	{Type: DataTypeCarbs, Label: "Carbs"},
	{Type: DataTypeTotalVolume, Label: "Total Volume"},
	{Type: DataTypeExerciseVolume, Label: "Exercise Volume"},
	{Type: DataTypeExercise1RM, Label: "Exercise 1RM"},
	{Type: DataTypeExerciseMaxWeight, Label: "Exercise Max Weight"},
}

var defaultColors = []string{
	"#3B82F6", "#10B981", "#8B5CF6", "#F59E0B",
	"#EF4444", "#EC4899", "#06B6D4", "#84CC16",
}

func DataTypes() []DataTypeInfo {
	return append([]DataTypeInfo(nil), dataTypes...)
}

func DefaultColors() []string {
	return append([]string(nil), defaultColors...)
}

func DataTypeLabel(dt DataType) string {
	for _, info := range dataTypes {
		if info.Type == dt {
			return info.Label
		}
	}
	return string(dt)
}

// DefaultWindowName names a new analytics window: "<exercise> - <metric>"
// for per-exercise types, the data type label otherwise.
func DefaultWindowName(dt DataType, exerciseName string) string {
	if !strings.HasPrefix(string(dt), "exercise_") || exerciseName == "" {
		return DataTypeLabel(dt)
	}

	metric := "Max Weight"
	switch dt {
	case DataTypeExerciseVolume:
		metric = "Volume"
	case DataTypeExercise1RM:
		metric = "1RM"
	}
	return exerciseName + " - " + metric
}
