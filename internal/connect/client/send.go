package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"

	"support-nav-bot/internal/connect/requests"
)

// ограничение на размер пересылаемого изображения
const maxImageSize = 20 << 20

// Send - отправить сообщение в чат
func (c *Client) Send(ctx context.Context, userID int64, text string, keyboard *requests.Keyboard) error {
	data := requests.MessageRequest{
		LineID:   c.lineID,
		UserID:   userID,
		AuthorID: c.specID,
		Text:     text,
		Keyboard: keyboard,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = c.Invoke(ctx, http.MethodPost, "/line/send/message/", nil, "application/json", jsonData)

	return err
}

// SendImage - скачать изображение по ссылке и отправить его в чат
func (c *Client) SendImage(ctx context.Context, userID int64, imageUrl string) error {
	image, err := c.download(ctx, imageUrl)
	if err != nil {
		return err
	}

	data := requests.FileRequest{
		LineID:   c.lineID,
		UserID:   userID,
		AuthorID: c.specID,
		FileName: imageName(imageUrl),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	metaPartHeader := textproto.MIMEHeader{}
	metaPartHeader.Set("Content-Disposition", `form-data; name="meta"`)
	metaPartHeader.Set("Content-Type", "application/json")
	metaPart, err := writer.CreatePart(metaPartHeader)
	if err != nil {
		return err
	}
	_, _ = metaPart.Write(jsonData)

	filePart, err := writer.CreateFormFile("file", data.FileName)
	if err != nil {
		return err
	}
	if _, err = filePart.Write(image); err != nil {
		return err
	}

	if err = writer.Close(); err != nil {
		return err
	}

	_, err = c.Invoke(ctx, http.MethodPost, "/line/send/image/", nil, writer.FormDataContentType(), body.Bytes())
	return err
}

func (c *Client) download(ctx context.Context, imageUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HttpError{Url: imageUrl, Code: resp.StatusCode, Message: "image download failed"}
	}

	image, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(image) > maxImageSize {
		return nil, fmt.Errorf("изображение %s больше %d байт", imageUrl, maxImageSize)
	}

	return image, nil
}

// имя файла из ссылки на изображение
func imageName(imageUrl string) string {
	u, err := url.Parse(imageUrl)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "image"
	}
	return path.Base(u.Path)
}
