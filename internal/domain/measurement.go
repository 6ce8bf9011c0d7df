package domain

import "github.com/shopspring/decimal"

// Measurement is the variant-specific payload of a monitoring row.
type Measurement interface {
	// Variant identifies the monitoring data family the payload belongs to.
	Variant() Variant
	// Fields lists every measurement field with its current value and bounds.
	Fields() []MeasurementField
}

// MeasurementField describes one named measurement value.
type MeasurementField struct {
	Name        string
	Value       *decimal.Decimal
	NonNegative bool
	Min         *decimal.Decimal
	Max         *decimal.Decimal
}

func bound(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

var (
	instantFlowMin    = bound("-1000")
	instantFlowMax    = bound("10000")
	cumulativeFlowMax = bound("999999999")
	rainfallMax       = bound("999.9")
	cumulativeRainMax = bound("9999.9")
)

// FlowMeasurement holds flow monitoring values.
type FlowMeasurement struct {
	InstantFlow    *decimal.Decimal `json:"instantFlow"`
	CumulativeFlow *decimal.Decimal `json:"cumulativeFlow"`
}

func (FlowMeasurement) Variant() Variant { return VariantFlow }

func (m FlowMeasurement) Fields() []MeasurementField {
	return []MeasurementField{
		{Name: "instant_flow", Value: m.InstantFlow, Min: instantFlowMin, Max: instantFlowMax},
		{Name: "cumulative_flow", Value: m.CumulativeFlow, NonNegative: true, Max: cumulativeFlowMax},
	}
}

// WaterLevelMeasurement holds water level monitoring values.
type WaterLevelMeasurement struct {
	WaterLevel *decimal.Decimal `json:"waterLevel"`
}

func (WaterLevelMeasurement) Variant() Variant { return VariantWaterLevel }

func (m WaterLevelMeasurement) Fields() []MeasurementField {
	return []MeasurementField{
		{Name: "water_level", Value: m.WaterLevel},
	}
}

// WaterQualityMeasurement holds water quality monitoring values.
type WaterQualityMeasurement struct {
	WaterTemperature *decimal.Decimal `json:"waterTemperature"`
	Turbidity        *decimal.Decimal `json:"turbidity"`
	PHValue          *decimal.Decimal `json:"phValue"`
	Conductivity     *decimal.Decimal `json:"conductivity"`
	DissolvedOxygen  *decimal.Decimal `json:"dissolvedOxygen"`
	AmmoniaNitrogen  *decimal.Decimal `json:"ammoniaNitrogen"`
	CODValue         *decimal.Decimal `json:"codValue"`
	ResidualChlorine *decimal.Decimal `json:"residualChlorine"`
}

func (WaterQualityMeasurement) Variant() Variant { return VariantWaterQuality }

func (m WaterQualityMeasurement) Fields() []MeasurementField {
	return []MeasurementField{
		{Name: "water_temperature", Value: m.WaterTemperature, NonNegative: true},
		{Name: "turbidity", Value: m.Turbidity, NonNegative: true},
		{Name: "ph_value", Value: m.PHValue},
		{Name: "conductivity", Value: m.Conductivity, NonNegative: true},
		{Name: "dissolved_oxygen", Value: m.DissolvedOxygen, NonNegative: true},
		{Name: "ammonia_nitrogen", Value: m.AmmoniaNitrogen, NonNegative: true},
		{Name: "cod_value", Value: m.CODValue, NonNegative: true},
		{Name: "residual_chlorine", Value: m.ResidualChlorine, NonNegative: true},
	}
}

// RainfallMeasurement holds rainfall monitoring values.
type RainfallMeasurement struct {
	Rainfall           *decimal.Decimal `json:"rainfall"`
	RainfallIntensity  *decimal.Decimal `json:"rainfallIntensity"`
	CumulativeRainfall *decimal.Decimal `json:"cumulativeRainfall"`
}

func (RainfallMeasurement) Variant() Variant { return VariantRainfall }

func (m RainfallMeasurement) Fields() []MeasurementField {
	return []MeasurementField{
		{Name: "rainfall", Value: m.Rainfall, NonNegative: true, Max: rainfallMax},
		{Name: "rainfall_intensity", Value: m.RainfallIntensity, NonNegative: true, Max: rainfallMax},
		{Name: "cumulative_rainfall", Value: m.CumulativeRainfall, NonNegative: true, Max: cumulativeRainMax},
	}
}

// HasValue reports whether at least one measurement field is present.
func HasValue(m Measurement) bool {
	for _, f := range m.Fields() {
		if f.Value != nil {
			return true
		}
	}
	return false
}

// NewMeasurement builds an M from values keyed by field name. Unknown names are ignored.
func NewMeasurement[M Measurement](values map[string]*decimal.Decimal) M {
	var m M
	switch p := any(&m).(type) {
	case *FlowMeasurement:
		p.InstantFlow = values["instant_flow"]
		p.CumulativeFlow = values["cumulative_flow"]
	case *WaterLevelMeasurement:
		p.WaterLevel = values["water_level"]
	case *WaterQualityMeasurement:
		p.WaterTemperature = values["water_temperature"]
		p.Turbidity = values["turbidity"]
		p.PHValue = values["ph_value"]
		p.Conductivity = values["conductivity"]
		p.DissolvedOxygen = values["dissolved_oxygen"]
		p.AmmoniaNitrogen = values["ammonia_nitrogen"]
		p.CODValue = values["cod_value"]
		p.ResidualChlorine = values["residual_chlorine"]
	case *RainfallMeasurement:
		p.Rainfall = values["rainfall"]
		p.RainfallIntensity = values["rainfall_intensity"]
		p.CumulativeRainfall = values["cumulative_rainfall"]
	}
	return m
}

// FieldNames returns the measurement field names of M in column order.
func FieldNames[M Measurement]() []string {
	var zero M
	fields := zero.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
