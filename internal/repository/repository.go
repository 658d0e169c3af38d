package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Repositories return sql.ErrNoRows untranslated; services map it to their
// own sentinel errors.
