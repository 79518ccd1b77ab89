package record

// Medical record types.
const (
	TypeLabReport    = "Lab Report"
	TypeImaging      = "Imaging"
	TypePrescription = "Prescription"
	TypeReport       = "Report"
)

// MedicalRecord is metadata about an uploaded document. The file itself
// lives in the filestore; only the stored name and rendered size are kept.
type MedicalRecord struct {
	ID       int    `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Type     string `db:"type" json:"type"`
	Doctor   string `db:"doctor" json:"doctor"`
	Date     string `db:"date" json:"date"`
	FileName string `db:"file_name" json:"fileName"`
	Size     string `db:"size" json:"size"`
}

// DemoData returns the seed records, oldest first so that after seeding the
// newest record is listed first.
func DemoData() []*MedicalRecord {
	return []*MedicalRecord{
		{Title: "Medical History", Type: TypeReport, Date: "2025-12-15", Doctor: "Dr. Wilson", Size: "3.8 MB", FileName: "medical-history.pdf"},
		{Title: "Prescription", Type: TypePrescription, Date: "2025-12-28", Doctor: "Dr. Davis", Size: "1.2 MB", FileName: "prescription.pdf"},
		{Title: "X-Ray Chest", Type: TypeImaging, Date: "2026-01-05", Doctor: "Dr. Johnson", Size: "5.1 MB", FileName: "xray-chest.pdf"},
		{Title: "Blood Test Results", Type: TypeLabReport, Date: "2026-01-10", Doctor: "Dr. Smith", Size: "2.5 MB", FileName: "blood-test.pdf"},
	}
}
