package karyawan

// Karyawan represents an employee row in the `karyawan` table. Field names on
// the wire stay in Indonesian (jabatan = position, umur = age, gaji = salary)
// to match the frontend.
type Karyawan struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Jabatan string `json:"jabatan"`
	Umur    int    `json:"umur"`
	Gaji    int    `json:"gaji"`
}
