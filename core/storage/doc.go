// Package storage provides the object-storage client used to archive and
// retrieve workbook JSON dumps. It wraps the Minio client behind a small
// interface so feature code can be tested against mocks.
package storage
