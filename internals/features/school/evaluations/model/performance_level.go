package model

// PerformanceLevel: skala kategorik 4 tingkat + unset.
// Pemetaan angka di sini adalah SATU-SATUNYA sumber kebenaran untuk agregasi;
// jangan duplikasi mapping ini di tempat lain.
type PerformanceLevel string

const (
	PerformanceExcellent    PerformanceLevel = "excellent"
	PerformanceOutstanding  PerformanceLevel = "outstanding"
	PerformanceAcceptable   PerformanceLevel = "acceptable"
	PerformanceInsufficient PerformanceLevel = "insufficient"
	PerformanceUnset        PerformanceLevel = "unset"
)

func (p PerformanceLevel) IsValid() bool {
	switch p {
	case PerformanceExcellent, PerformanceOutstanding, PerformanceAcceptable,
		PerformanceInsufficient, PerformanceUnset:
		return true
	default:
		return false
	}
}

// Numeric mengubah level ke skor. Total: input tak dikenal (termasuk string
// kosong) dipetakan ke 0, bukan error, rata-rata tidak boleh gagal gara-gara
// satu record kosong.
func (p PerformanceLevel) Numeric() float64 {
	switch p {
	case PerformanceExcellent:
		return 5.0
	case PerformanceOutstanding:
		return 4.0
	case PerformanceAcceptable:
		return 3.0
	case PerformanceInsufficient:
		return 2.0
	default:
		return 0.0
	}
}

// Label: representasi display untuk rapor (bukan untuk perhitungan).
func (p PerformanceLevel) Label() string {
	switch p {
	case PerformanceExcellent:
		return "Sangat Baik"
	case PerformanceOutstanding:
		return "Baik"
	case PerformanceAcceptable:
		return "Cukup"
	case PerformanceInsufficient:
		return "Kurang"
	default:
		return "-"
	}
}
