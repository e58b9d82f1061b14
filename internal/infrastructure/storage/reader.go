package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"fluffy-fiesta/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Заголовок
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.FrameCount < 0 || header.Players < 0 {
		return nil, fmt.Errorf("corrupt header: %d frames, %d players", header.FrameCount, header.Players)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Players:   int(header.Players),
		Digest:    header.Digest,
		Frames:    make([]domain.ReplayFrame, header.FrameCount),
	}

	// 2. Строки
	var err error
	if session.ID, err = readString(r); err != nil {
		return nil, fmt.Errorf("failed to read id: %w", err)
	}
	if session.Level, err = readString(r); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}

	// 3. Кадры
	for i := range session.Frames {
		var fh FrameHeader
		if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		players := make([]domain.PlayerInput, fh.PlayerCount)
		for p := range players {
			var rec PlayerRecord
			if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
				return nil, fmt.Errorf("frame %d player %d: %w", i, p, err)
			}
			players[p] = unpackButtons(rec)
		}

		session.Frames[i] = domain.ReplayFrame{
			Tick:  fh.Tick,
			Dt:    fh.Dt,
			Input: domain.InputSnapshot{Players: players},
		}
	}

	return session, nil
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func unpackButtons(rec PlayerRecord) domain.PlayerInput {
	return domain.PlayerInput{
		Left:  rec.Buttons&bitLeft != 0,
		Right: rec.Buttons&bitRight != 0,
		Up:    rec.Buttons&bitUp != 0,
		Down:  rec.Buttons&bitDown != 0,
		Fire:  rec.Buttons&bitFire != 0,
		AxisX: rec.AxisX,
		AxisY: rec.AxisY,
	}
}
