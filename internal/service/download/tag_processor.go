package download

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/lyrics-grabber/internal/constants"
	"github.com/oshokin/lyrics-grabber/internal/logger"
)

// TagProcessor embeds song metadata into downloaded audio files.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to audio files.
type WriteTagsRequest struct {
	// TrackPath is the file path of the audio track.
	TrackPath string
	// Format is the audio format of the file.
	Format string
	// Title is the song title.
	Title string
	// Artist is the performer.
	Artist string
	// Lyrics is the plain-text lyrics body.
	Lyrics string
	// Cover is the front cover image, nil when there is none.
	Cover *CoverImage
}

// CoverImage contains image data and its MIME type.
type CoverImage struct {
	// Data contains the raw image bytes.
	Data []byte
	// MIMEType specifies the image format (e.g., "image/jpeg").
	MIMEType string
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// extractFLACCommentResult contains the result of extracting FLAC comment metadata.
type extractFLACCommentResult struct {
	// Comment is the FLAC Vorbis comment metadata block.
	Comment *flacvorbis.MetaDataBlockVorbisComment
	// Index is the index of the comment block in the FLAC file metadata (-1 if not found).
	Index int
}

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// SupportsTagging reports whether lyrics can be embedded into files of the format.
func SupportsTagging(format string) bool {
	return format == constants.AudioFormatMP3 || format == constants.AudioFormatFLAC
}

// WriteTags writes title, artist, lyrics and cover into an mp3 or flac file.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, req *WriteTagsRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	switch req.Format {
	case constants.AudioFormatFLAC:
		return tp.writeFLACTags(ctx, req)
	case constants.AudioFormatMP3:
		return tp.writeMP3Tags(req)
	default:
		return ErrUnsupportedTagFormat
	}
}

func (tp *TagProcessorImpl) writeFLACTags(ctx context.Context, req *WriteTagsRequest) error {
	f, err := parseFLACFile(filepath.Clean(req.TrackPath))
	if err != nil {
		return err
	}

	commentResult := tp.extractFLACComment(f)

	tag := commentResult.Comment
	if tag == nil {
		tag = flacvorbis.New()
	}

	err = tp.addFLACTags(tag, req)
	if err != nil {
		return err
	}

	tagMeta := tag.Marshal()
	if commentResult.Index >= 0 {
		f.Meta[commentResult.Index] = &tagMeta
	} else {
		f.Meta = append(f.Meta, &tagMeta)
	}

	tp.embedFLACCover(ctx, f, req.Cover)

	return f.Save(req.TrackPath)
}

// parseFLACFile reads the metadata blocks and the audio frames that follow them.
// flac.ParseFile indexes the frame data without a length check, so a file
// that ends right after its metadata is rejected here instead.
func parseFLACFile(path string) (*flac.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Read-only handle.

	f, err := flac.ParseMetadata(file)
	if err != nil {
		return nil, err
	}

	f.Frames, err = io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	// Every audio frame starts with the 14-bit sync code 0b11111111111110.
	if len(f.Frames) < 2 || f.Frames[0] != 0xFF || f.Frames[1]>>2 != 0x3E {
		return nil, fmt.Errorf("%w: %s has no audio frames", ErrMalformedFLAC, path)
	}

	return f, nil
}

func (tp *TagProcessorImpl) extractFLACComment(f *flac.File) *extractFLACCommentResult {
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			return &extractFLACCommentResult{
				Comment: comment,
				Index:   idx,
			}
		}
	}

	return &extractFLACCommentResult{
		Comment: nil,
		Index:   -1,
	}
}

func (tp *TagProcessorImpl) addFLACTags(tag *flacvorbis.MetaDataBlockVorbisComment, req *WriteTagsRequest) error {
	flacTags := []struct {
		key   string
		value string
	}{
		{key: "TITLE", value: req.Title},
		{key: "ARTIST", value: req.Artist},
		{key: "LYRICS", value: strings.TrimSpace(req.Lyrics)},
	}

	for _, field := range flacTags {
		if field.value == "" {
			continue
		}

		err := tag.Add(field.key, field.value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (tp *TagProcessorImpl) embedFLACCover(ctx context.Context, f *flac.File, cover *CoverImage) {
	if cover == nil {
		return
	}

	picture, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "", cover.Data, cover.MIMEType)
	if err != nil {
		logger.Warnf(ctx, "Failed to embed cover into FLAC: %v", err)

		return
	}

	pictureMeta := picture.Marshal()
	f.Meta = append(f.Meta, &pictureMeta)
}

func (tp *TagProcessorImpl) writeMP3Tags(req *WriteTagsRequest) error {
	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.TrackPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(req.Title)
	tag.SetArtist(req.Artist)

	if lyrics := strings.TrimSpace(req.Lyrics); lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding: id3v2.EncodingUTF8,
			// Field is required, so we just use lingua franca.
			Language:          id3v2.EnglishISO6392Code,
			ContentDescriptor: lyricsDescriptor,
			Lyrics:            lyrics,
		})
	}

	if req.Cover != nil {
		//nolint:exhaustruct // Description field intentionally empty for cover images.
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    req.Cover.MIMEType,
			PictureType: id3v2.PTFrontCover,
			Picture:     req.Cover.Data,
		})
	}

	return tag.Save()
}
