package pkg

import (
	"os"

	"github.com/rotisserie/eris"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFile 读取文件内容
func ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", filePath)
	}
	return data, nil
}

// WriteFile 写入文件内容
func WriteFile(filePath string, data []byte) error {
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return eris.Wrapf(err, "failed to write %s", filePath)
	}
	return nil
}
