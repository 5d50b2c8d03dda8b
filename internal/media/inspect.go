package media

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-telegram/bot/models"

	"botfileid/pkg/fileid"
)

// Result pairs an extracted file with its decoded file id.
type Result struct {
	File    File
	Decoded *fileid.FileID
	Err     error
}

// Inspect decodes every file id attached to message. A file id that fails
// to decode does not stop the others.
func Inspect(decoder *fileid.Decoder, message *models.Message) []Result {
	files := Extract(message)
	results := make([]Result, len(files))
	for i, f := range files {
		results[i] = Result{File: f}
		decoded, err := decoder.Decode(f.FileID)
		if err != nil {
			results[i].Err = fmt.Errorf("decoding %s %q: %w", f.Kind, f.Name, err)
			continue
		}
		results[i].Decoded = &decoded
	}
	return results
}

// ParseMessages accepts either a Bot API update or a bare message and
// returns the messages it carries.
func ParseMessages(data []byte) ([]*models.Message, error) {
	var update models.Update
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, fmt.Errorf("parsing update: %w", err)
	}

	var messages []*models.Message
	for _, m := range []*models.Message{update.Message, update.EditedMessage, update.ChannelPost, update.EditedChannelPost} {
		if m != nil {
			messages = append(messages, m)
		}
	}
	if len(messages) > 0 {
		return messages, nil
	}

	var message models.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("parsing message: %w", err)
	}
	if message.ID == 0 && len(Extract(&message)) == 0 {
		return nil, errors.New("input is neither an update nor a message with files")
	}
	return []*models.Message{&message}, nil
}
