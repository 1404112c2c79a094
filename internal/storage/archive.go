package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/annel0/voxel-engine/internal/world"
	"github.com/klauspost/compress/s2"
)

// WriteArchive сохраняет сжатый снимок мира в файл.
// Переносимый формат кодека остаётся несжатым; архив — отдельная
// поверхность для резервных копий, где размер важнее переносимости.
func WriteArchive(path string, m *world.Manager) error {
	data, err := Save(m)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания архива: %w", err)
	}
	defer file.Close()

	writer := s2.NewWriter(file)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("ошибка записи архива: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("ошибка завершения архива: %w", err)
	}
	return nil
}

// ReadArchive загружает сжатый снимок мира из файла в менеджер
func ReadArchive(path string, m *world.Manager) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия архива: %w", err)
	}
	defer file.Close()

	reader := s2.NewReader(file)
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("ошибка чтения архива: %w", err)
	}

	return Load(data, m)
}
