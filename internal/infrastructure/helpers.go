package infrastructure

import "github.com/DRSN-tech/storefront/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, png, gif и webp. Для остальных типов возвращает e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/gif":
		return "gif", nil
	case "image/webp":
		return "webp", nil
	default:
		return "", e.ErrUnsupportedMediaType
	}
}
