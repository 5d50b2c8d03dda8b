package media

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/gosimple/slug"
)

// File is a single file reference found on a Bot API message.
type File struct {
	Kind         string
	Name         string
	Size         uint64
	FileID       string
	FileUniqueID string
}

// Extract lists every file attached to message, photo sizes and media
// thumbnails included.
func Extract(message *models.Message) []File {
	if message == nil {
		return nil
	}

	var result []File
	dateStr := time.Unix(int64(message.Date), 0).UTC().Format("2006-01-02")

	for _, size := range message.Photo {
		result = append(result, File{
			Kind:         "photo",
			Name:         fileName(fmt.Sprintf("photo_%s_%d_%dx%d", dateStr, message.ID, size.Width, size.Height), ".jpg"),
			Size:         uint64(size.FileSize),
			FileID:       size.FileID,
			FileUniqueID: size.FileUniqueID,
		})
	}

	if message.Audio != nil {
		result = append(result, File{
			Kind:         "audio",
			Name:         namedOr(message.Audio.FileName, "audio", dateStr, message.ID, message.Audio.MimeType),
			Size:         uint64(message.Audio.FileSize),
			FileID:       message.Audio.FileID,
			FileUniqueID: message.Audio.FileUniqueID,
		})
		result = appendThumbnail(result, "audio", dateStr, message.ID, message.Audio.Thumbnail)
	}

	if message.Document != nil {
		result = append(result, File{
			Kind:         "document",
			Name:         namedOr(message.Document.FileName, "document", dateStr, message.ID, message.Document.MimeType),
			Size:         uint64(message.Document.FileSize),
			FileID:       message.Document.FileID,
			FileUniqueID: message.Document.FileUniqueID,
		})
		result = appendThumbnail(result, "document", dateStr, message.ID, message.Document.Thumbnail)
	}

	if message.Animation != nil {
		result = append(result, File{
			Kind:         "animation",
			Name:         namedOr(message.Animation.FileName, "animation", dateStr, message.ID, message.Animation.MimeType),
			Size:         uint64(message.Animation.FileSize),
			FileID:       message.Animation.FileID,
			FileUniqueID: message.Animation.FileUniqueID,
		})
		result = appendThumbnail(result, "animation", dateStr, message.ID, message.Animation.Thumbnail)
	}

	if message.Video != nil {
		result = append(result, File{
			Kind:         "video",
			Name:         namedOr(message.Video.FileName, "video", dateStr, message.ID, message.Video.MimeType),
			Size:         uint64(message.Video.FileSize),
			FileID:       message.Video.FileID,
			FileUniqueID: message.Video.FileUniqueID,
		})
		result = appendThumbnail(result, "video", dateStr, message.ID, message.Video.Thumbnail)
	}

	if message.VideoNote != nil {
		result = append(result, File{
			Kind:         "video_note",
			Name:         fileName(fmt.Sprintf("video_note_%s_%d", dateStr, message.ID), ".mp4"),
			Size:         uint64(message.VideoNote.FileSize),
			FileID:       message.VideoNote.FileID,
			FileUniqueID: message.VideoNote.FileUniqueID,
		})
		result = appendThumbnail(result, "video_note", dateStr, message.ID, message.VideoNote.Thumbnail)
	}

	if message.Voice != nil {
		result = append(result, File{
			Kind:         "voice",
			Name:         fileName(fmt.Sprintf("voice_%s_%d", dateStr, message.ID), getExtFromMIME(message.Voice.MimeType)),
			Size:         uint64(message.Voice.FileSize),
			FileID:       message.Voice.FileID,
			FileUniqueID: message.Voice.FileUniqueID,
		})
	}

	if message.Sticker != nil {
		result = append(result, File{
			Kind:         "sticker",
			Name:         fileName(fmt.Sprintf("sticker_%s_%d", dateStr, message.ID), ".webp"),
			Size:         uint64(message.Sticker.FileSize),
			FileID:       message.Sticker.FileID,
			FileUniqueID: message.Sticker.FileUniqueID,
		})
		result = appendThumbnail(result, "sticker", dateStr, message.ID, message.Sticker.Thumbnail)
	}

	return result
}

// appendThumbnail adds the thumbnail of a kind file when the message has one.
func appendThumbnail(result []File, kind, dateStr string, messageID int, thumb *models.PhotoSize) []File {
	if thumb == nil {
		return result
	}
	return append(result, File{
		Kind:         kind + "_thumbnail",
		Name:         fileName(fmt.Sprintf("%s_thumbnail_%s_%d_%dx%d", kind, dateStr, messageID, thumb.Width, thumb.Height), ".jpg"),
		Size:         uint64(thumb.FileSize),
		FileID:       thumb.FileID,
		FileUniqueID: thumb.FileUniqueID,
	})
}

func namedOr(name, kind, dateStr string, messageID int, mimeType string) string {
	if strings.TrimSpace(name) == "" {
		return fileName(fmt.Sprintf("%s_%s_%d", kind, dateStr, messageID), getExtFromMIME(mimeType))
	}
	ext := filepath.Ext(name)
	return fileName(strings.TrimSuffix(name, ext), strings.ToLower(ext))
}

func fileName(base, ext string) string {
	name := slug.Make(base)
	if name == "" {
		name = "file"
	}
	return name + ext
}

func getExtFromMIME(mimeType string) string {
	mimeMap := map[string]string{
		"audio/mpeg":      ".mp3",
		"audio/ogg":       ".ogg",
		"audio/mp4":       ".m4a",
		"video/mp4":       ".mp4",
		"video/quicktime": ".mov",
		"video/x-msvideo": ".avi",
		"video/webm":      ".webm",
		"application/pdf": ".pdf",
		"image/jpeg":      ".jpg",
		"image/png":       ".png",
		"image/gif":       ".gif",
		"image/webp":      ".webp",
	}

	if ext, ok := mimeMap[mimeType]; ok {
		return ext
	}

	parts := strings.Split(mimeType, "/")
	if len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}

	return ".bin"
}
