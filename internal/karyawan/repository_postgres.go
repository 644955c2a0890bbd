package karyawan

import (
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listKaryawansQuery   = `SELECT id, name, jabatan, umur, gaji FROM karyawan ORDER BY id`
	getKaryawanByIDQuery = `SELECT id, name, jabatan, umur, gaji FROM karyawan WHERE id = $1`

	insertKaryawanQuery = `
		INSERT INTO karyawan (name, jabatan, umur, gaji)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	updateKaryawanQuery = `
		UPDATE karyawan
		SET name = $1,
			jabatan = $2,
			umur = $3,
			gaji = $4
		WHERE id = $5
	`
	deleteKaryawanQuery = `DELETE FROM karyawan WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Karyawan, error) {
	rows, err := r.db.Query(listKaryawansQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	karyawans := make([]Karyawan, 0)
	for rows.Next() {
		var k Karyawan
		if err := rows.Scan(&k.ID, &k.Name, &k.Jabatan, &k.Umur, &k.Gaji); err != nil {
			return nil, err
		}
		karyawans = append(karyawans, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return karyawans, nil
}

func (r *PostgresRepository) GetByID(id int) (Karyawan, error) {
	var k Karyawan
	err := r.db.QueryRow(getKaryawanByIDQuery, id).Scan(&k.ID, &k.Name, &k.Jabatan, &k.Umur, &k.Gaji)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Karyawan{}, ErrNotFound
		}
		return Karyawan{}, err
	}

	return k, nil
}

func (r *PostgresRepository) Create(k Karyawan) (Karyawan, error) {
	var id int
	err := r.db.QueryRow(insertKaryawanQuery, k.Name, k.Jabatan, k.Umur, k.Gaji).Scan(&id)
	if err != nil {
		return Karyawan{}, err
	}

	k.ID = id
	return k, nil
}

func (r *PostgresRepository) Update(id int, update Karyawan) (Karyawan, error) {
	result, err := r.db.Exec(updateKaryawanQuery, update.Name, update.Jabatan, update.Umur, update.Gaji, id)
	if err != nil {
		return Karyawan{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Karyawan{}, err
	}
	if affected == 0 {
		return Karyawan{}, ErrNotFound
	}

	update.ID = id
	return update, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteKaryawanQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
