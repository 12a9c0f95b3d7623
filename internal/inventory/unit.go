package inventory

// Unit is a product's unit of measure.
type Unit string

const (
	UnitPiece      Unit = "un"
	UnitBox        Unit = "cx"
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitMeter      Unit = "m"
	UnitPack       Unit = "pct"
)

var knownUnits = map[Unit]bool{
	UnitPiece:      true,
	UnitBox:        true,
	UnitKilogram:   true,
	UnitGram:       true,
	UnitLiter:      true,
	UnitMilliliter: true,
	UnitMeter:      true,
	UnitPack:       true,
}

func (u Unit) Valid() bool {
	return knownUnits[u]
}
