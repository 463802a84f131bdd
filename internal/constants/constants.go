package constants

// Rack defaults
const (
	DefaultRackName   = "Rack"
	DefaultRackHeight = 42
	DefaultRackWidth  = 19
	MinRackHeight     = 1
	MaxRackHeight     = 100
)

// History defaults
const (
	DefaultHistoryLimit = 50
)

// Device defaults
const (
	DefaultDeviceColor = "9e9e9e"
	DefaultCategory    = "other"
	DefaultDisplayMode = "label"
)

// Faces
const (
	FaceFront = "front"
	FaceRear  = "rear"
	FaceBoth  = "both"
)

// Airflow patterns
const (
	AirflowFrontToRear = "front-to-rear"
	AirflowRearToFront = "rear-to-front"
	AirflowSideToRear  = "side-to-rear"
	AirflowPassive     = "passive"
)

// Config keys
const (
	ConfigFileName = "rackplanner"
	EnvPrefix      = "RACKPLANNER"
)

// Valid rack widths in inches
var RackWidths = []int{10, 19, 23}

// Category color map, used when a device type carries no colour of its own
var CategoryColorMap = map[string]string{
	"server":           "4a90d9",
	"network":          "7b61ff",
	"patch-panel":      "607d8b",
	"power":            "f44336",
	"storage":          "4caf50",
	"kvm":              "ff9800",
	"av-media":         "9c27b0",
	"cooling":          "00bcd4",
	"shelf":            "795548",
	"blank":            "424242",
	"cable-management": "9e9e9e",
	"other":            "9e9e9e",
}
