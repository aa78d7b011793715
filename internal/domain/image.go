package domain

// Image описывает изображение товара. Картинка всегда приходит
// целиком в память через multipart-форму, поэтому размер объекта
// равен длине Bytes.
type Image struct {
	ID          string // uuid
	Bucket      string
	ObjectKey   string
	Bytes       []byte
	ContentType string // Example: "image/jpeg"
}

func NewImage(id string, bucket string, objectKey string, data []byte, contentType string) *Image {
	return &Image{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		ContentType: contentType,
	}
}
