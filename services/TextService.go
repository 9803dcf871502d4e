package services

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

const DefaultLinesPerFile = 500

var (
	ErrInvalidLinesPerFile = errors.New("lines per file must be at least 1")
	ErrEmptyPrefix         = errors.New("output prefix must not be empty")
)

// Chunk is the half-open line range [Start, End) written to part Index of Total.
type Chunk struct {
	Index int
	Total int
	Start int
	End   int
}

type Result struct {
	OutputDir  string
	TotalLines int
	Files      []string
	Chunks     []Chunk
}

type TextService struct {
	// OutputRoot is the directory the output directory is created in.
	// Empty means the current working directory.
	OutputRoot      string
	logger          logrus.FieldLogger
	statusCallbacks map[string]func(string)
}

func NewTextService(logger logrus.FieldLogger) *TextService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TextService{
		logger:          logger,
		statusCallbacks: map[string]func(string){},
	}
}

// RegisterStatusCallback adds a progress listener. The registry is only
// written while front ends are being constructed; callbacks run on whichever
// goroutine calls SplitFile, which for the window is its worker goroutine.
func (textService *TextService) RegisterStatusCallback(id string, statusCallback func(string)) {
	textService.statusCallbacks[id] = statusCallback
}

func (textService *TextService) dispatchStatus(status string) {
	for _, statusCallback := range textService.statusCallbacks {
		statusCallback(status)
	}
}

// SplitFile writes the lines of inputPath into numbered part files of at most
// linesPerFile lines each. Nothing is created on disk unless the input could
// be read and decoded.
func (textService *TextService) SplitFile(inputPath string, outputPrefix string, linesPerFile int) (*Result, error) {
	if linesPerFile < 1 {
		return nil, ErrInvalidLinesPerFile
	}
	if outputPrefix == "" {
		return nil, ErrEmptyPrefix
	}
	textService.dispatchStatus("Reading lines")
	data, err := readInput(inputPath)
	if err != nil {
		return nil, err
	}
	lines := SplitLines(data)
	totalLines := len(lines)
	chunks := Chunks(totalLines, linesPerFile)
	outputDir := filepath.Join(textService.OutputRoot, OutputDirName(outputPrefix))
	log := textService.logger.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputDir,
	})
	log.Infof("Total lines found: %d", totalLines)
	log.Infof("Splitting into %d files", len(chunks))

	err = os.MkdirAll(outputDir, 0777)
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	result := &Result{
		OutputDir:  outputDir,
		TotalLines: totalLines,
		Chunks:     chunks,
	}
	if totalLines == 0 {
		log.Warn("Input file has no lines, nothing to write")
		return result, nil
	}
	for _, chunk := range chunks {
		filePath := filepath.Join(outputDir, OutputFileName(outputPrefix, chunk.Index))
		textService.dispatchStatus(fmt.Sprintf("Writing part %d/%d", chunk.Index, chunk.Total))
		err = writeChunk(filePath, chunk, lines[chunk.Start:chunk.End])
		if err != nil {
			return result, fmt.Errorf("failed to write part %d to %s: %w", chunk.Index, filePath, err)
		}
		result.Files = append(result.Files, filePath)
		status := fmt.Sprintf("Created file: %s with lines from %d to %d", filePath, chunk.Start+1, chunk.End)
		log.Info(status)
		textService.dispatchStatus(status)
	}
	return result, nil
}

func readInput(inputPath string) ([]byte, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: inputPath, Err: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	if !utf8.Valid(data) {
		return nil, &DecodeError{
			Path:     inputPath,
			Offset:   invalidOffset(data),
			MimeType: mimetype.Detect(data).String(),
		}
	}
	return data, nil
}

func invalidOffset(data []byte) int {
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return -1
}

func writeChunk(filePath string, chunk Chunk, lines [][]byte) error {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer file.Close() // Close after err; valid path checks Close retval
	writer := bufio.NewWriter(file)
	_, err = writer.WriteString(PartHeader(chunk.Index, chunk.Total))
	if err != nil {
		return err
	}
	for _, line := range lines {
		_, err = writer.Write(line)
		if err != nil {
			return err
		}
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return file.Close()
}

// SplitLines cuts data after every newline. Line endings are kept as they are
// and a final line without a newline is kept too.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte
	reader := bufio.NewReader(bytes.NewReader(data))
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err != nil {
			return lines
		}
	}
}

func ChunkCount(totalLines int, linesPerFile int) int {
	if totalLines <= 0 || linesPerFile < 1 {
		return 0
	}
	return (totalLines + linesPerFile - 1) / linesPerFile
}

func Chunks(totalLines int, linesPerFile int) []Chunk {
	numFiles := ChunkCount(totalLines, linesPerFile)
	chunks := make([]Chunk, 0, numFiles)
	for i := 0; i < numFiles; i++ {
		end := (i + 1) * linesPerFile
		if end > totalLines {
			end = totalLines
		}
		chunks = append(chunks, Chunk{
			Index: i + 1,
			Total: numFiles,
			Start: i * linesPerFile,
			End:   end,
		})
	}
	return chunks
}

func PartHeader(index int, total int) string {
	return fmt.Sprintf("--- Part %d/%d ---\n", index, total)
}

func OutputDirName(prefix string) string {
	return prefix + "_split_files"
}

func OutputFileName(prefix string, index int) string {
	return fmt.Sprintf("%s_%d.txt", prefix, index)
}

// PrefixFromPath returns the base name of path without its last extension.
// Dot files such as ".notes" keep their full name.
func PrefixFromPath(path string) string {
	base := filepath.Base(path)
	prefix := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.Trim(prefix, ".") == "" {
		return base
	}
	return prefix
}
