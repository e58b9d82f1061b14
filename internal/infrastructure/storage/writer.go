package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"fluffy-fiesta/internal/domain"
)

const (
	MagicHeader string = `FFRP` // 4 байта
	Version1    uint32 = 1

	// Расширение файлов записи
	Extension = ".ffrp"
)

// Биты кнопок в записи кадра
const (
	bitLeft uint8 = 1 << iota
	bitRight
	bitUp
	bitDown
	bitFire
)

var (
	ErrBadMagic      = errors.New("invalid magic")
	ErrStringTooLong = errors.New("string too long")
	ErrTooManyPlayer = errors.New("too many players in frame")
)

// ReplayFileHeader - заголовок файла. Только числа и массивы, пишется одним binary.Write.
type ReplayFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	Players    int32   // 4 байта
	FrameCount int32   // 4 байта
	Digest     uint64  // 8 байт
}

// FrameHeader - заголовок кадра, за ним PlayerCount записей PlayerRecord.
type FrameHeader struct {
	Tick        uint64  // 8
	Dt          float64 // 8
	PlayerCount uint8   // 1
}

// PlayerRecord - ввод одного игрока.
type PlayerRecord struct {
	Buttons uint8
	AxisX   float64
	AxisY   float64
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет запись на диск и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%s_%d%s", session.Seed, session.Level, session.Timestamp, Extension)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	if len(s.Frames) > math.MaxInt32 {
		return fmt.Errorf("too many frames: %d", len(s.Frames))
	}

	// 1. Заголовок
	header := ReplayFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Timestamp:  s.Timestamp,
		Players:    int32(s.Players),
		FrameCount: int32(len(s.Frames)),
		Digest:     s.Digest,
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Строки с длиной
	for _, str := range []string{s.ID, s.Level} {
		if err := writeString(w, str); err != nil {
			return err
		}
	}

	// 3. Кадры
	for _, frame := range s.Frames {
		players := frame.Input.Players
		if len(players) > math.MaxUint8 {
			return fmt.Errorf("%w: %d", ErrTooManyPlayer, len(players))
		}

		fh := FrameHeader{Tick: frame.Tick, Dt: frame.Dt, PlayerCount: uint8(len(players))}
		if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
			return err
		}
		for _, p := range players {
			rec := PlayerRecord{Buttons: packButtons(p), AxisX: p.AxisX, AxisY: p.AxisY}
			if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrStringTooLong, len(s))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func packButtons(p domain.PlayerInput) uint8 {
	var b uint8
	if p.Left {
		b |= bitLeft
	}
	if p.Right {
		b |= bitRight
	}
	if p.Up {
		b |= bitUp
	}
	if p.Down {
		b |= bitDown
	}
	if p.Fire {
		b |= bitFire
	}
	return b
}
