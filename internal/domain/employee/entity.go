package employee

import "time"

// Employee is one personnel record. Attendance cells reference employees by
// ID; deleting an employee leaves their historical cells in the ledger
// untouched (orphaned references are tolerated, period data stays exportable
// for already-closed months).
type Employee struct {
	ID         string
	SicilNo    string // payroll registry number
	FullName   string
	LocationID string
	Duty       string // görevi, free text or an SGK occupation code
	HireDate   string // "02.01.2006" format, as entered
	ExitDate   string // empty while employed
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Duties is the fixed duty picklist offered by the personnel form.
var Duties = []string{"MÜDÜR", "ŞEF", "UZMAN", "MÜHENDİS", "TEKNİKER", "MEMUR", "OPERATÖR", "İŞÇİ"}

// SGKOccupationCodes lists the SGK occupation codes the duty field may
// reference, "<code> - <title>" formatted.
var SGKOccupationCodes = []string{
	"1112.01 - Genel Müdür",
	"1112.02 - Genel Müdür Yardımcısı",
	"2141.01 - Endüstri Mühendisi",
	"2142.01 - İnşaat Mühendisi",
	"2144.01 - Makine Mühendisi",
	"2151.01 - Elektrik Mühendisi",
	"2411.01 - Muhasebeci",
	"2411.02 - Mali Müşavir",
	"2421.01 - Yönetim Danışmanı",
	"3112.01 - İnşaat Teknikeri",
	"3113.01 - Elektrik Teknikeri",
	"3115.01 - Makine Teknikeri",
	"3322.01 - Satış Temsilcisi",
	"3341.01 - Büro Yönetimi Elemanı",
	"4110.01 - Sekreter",
	"4311.01 - Muhasebe Kayıt Elemanı",
	"5223.01 - Tezgahtar",
	"7233.01 - Makine Bakım Onarımcısı",
	"8181.01 - Forklift Operatörü",
	"9112.01 - Temizlik Görevlisi",
	"9333.01 - Yükleme Boşaltma İşçisi",
	"9412.01 - Kurye",
}
