package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"fluffy-fiesta/internal/domain"
	"fluffy-fiesta/internal/infrastructure/storage"
	"fluffy-fiesta/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		session := load(2)
		if session == nil {
			return
		}
		fmt.Printf("id:       %s\n", session.ID)
		fmt.Printf("recorded: %s\n", time.Unix(session.Timestamp, 0).UTC().Format(time.RFC3339))
		fmt.Printf("seed:     %d\n", session.Seed)
		fmt.Printf("level:    %s\n", session.Level)
		fmt.Printf("players:  %d\n", session.Players)
		fmt.Printf("frames:   %d (%.2fs)\n", len(session.Frames), duration(session))
		fmt.Printf("digest:   %016x\n", session.Digest)
	case "frames":
		session := load(2)
		if session == nil {
			return
		}
		limit := len(session.Frames)
		if len(os.Args) > 3 {
			n, err := strconv.Atoi(os.Args[3])
			if err != nil || n < 0 {
				fmt.Printf("Invalid frame count: %s\n", os.Args[3])
				return
			}
			limit = min(limit, n)
		}
		for _, f := range session.Frames[:limit] {
			fmt.Printf("%6d dt=%.4f", f.Tick, f.Dt)
			for slot, p := range f.Input.Players {
				fmt.Printf(" | %d:%s x=%+.2f y=%+.2f", slot, buttons(p), p.X(), p.Y())
			}
			fmt.Println()
		}
	case "json":
		session := load(2)
		if session == nil {
			return
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(session); err != nil {
			fmt.Printf("Encode failed: %v\n", err)
		}
	case "seed":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replayutil seed <string>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	default:
		printHelp()
	}
}

func load(arg int) *domain.ReplaySession {
	if len(os.Args) <= arg {
		fmt.Printf("Usage: replayutil %s <file.ffrp>\n", os.Args[1])
		return nil
	}
	svc := &storage.ReplayService{}
	session, err := svc.Load(os.Args[arg])
	if err != nil {
		fmt.Printf("Invalid replay: %v\n", err)
		return nil
	}
	return session
}

func duration(s *domain.ReplaySession) float64 {
	var total float64
	for _, f := range s.Frames {
		total += f.Dt
	}
	return total
}

func buttons(p domain.PlayerInput) string {
	b := []byte("-----")
	for i, on := range []bool{p.Left, p.Right, p.Up, p.Down, p.Fire} {
		if on {
			b[i] = "LRUDF"[i]
		}
	}
	return string(b)
}

func printHelp() {
	fmt.Println(`Replay Utility - просмотр записей партий (.ffrp)
Commands:
  info <file>            - заголовок записи: сид, карта, игроки, хэш
  frames <file> [n]      - ввод первых n кадров
  json <file>            - запись целиком в JSON
  seed <string>          - зерно из строки (как для имени карты)`)
}
