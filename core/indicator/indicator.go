package indicator

// Record is the serialized form of an indicator: the constructor fields keyed
// by name plus a "class_name" discriminator.
type Record map[string]any

// ClassNameKey is the discriminator key in a serialized Record.
const ClassNameKey = "class_name"

// Summary is the reduction of one series' pending values at flush time.
type Summary struct {
	Name      string             `json:"name"`
	Count     int                `json:"count"`
	Mean      float64            `json:"mean"`
	Min       float64            `json:"min"`
	Max       float64            `json:"max"`
	Std       float64            `json:"std"`
	Last      float64            `json:"last"`
	Quantiles map[string]float64 `json:"quantiles,omitempty"`
	Print     bool               `json:"print"`
}

// Indicator accumulates and summarizes a named metric's values over the
// lifetime of a logging session.
type Indicator interface {
	Name() string
	// IsPrint reports whether the indicator is surfaced in console output.
	IsPrint() bool
	// Collect folds a raw logged value into the pending buffer.
	Collect(v any) error
	// Flush reduces and drains the pending values. ok is false when nothing
	// was collected since the previous flush.
	Flush() (summaries []Summary, ok bool)
	// ToRecord serializes the indicator's constructor fields.
	ToRecord() Record
}
