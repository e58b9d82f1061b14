package api

import (
	"encoding/json"

	"fluffy-fiesta/pkg/vecmath"
)

// Типы сообщений сервера
const (
	MsgWelcome  = "WELCOME"
	MsgSnapshot = "SNAPSHOT"
	MsgError    = "ERROR"
	MsgInfo     = "INFO"
)

// Действия клиента
const (
	ActionInput     = "INPUT"
	ActionAutopilot = "AUTOPILOT"
)

// MaxPlayers - предел слотов игроков в одной симуляции.
const MaxPlayers = 16

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
type ServerResponse struct {
	// Type тип сообщения: WELCOME, SNAPSHOT, INFO или ERROR.
	Type string `json:"type"`

	// SessionID идентификатор подключения, приходит в WELCOME.
	SessionID string `json:"sessionId,omitempty"`

	// Map полное описание карты. Отправляется один раз в WELCOME.
	Map *MapView `json:"map,omitempty"`

	Snapshot *WorldSnapshot `json:"snapshot,omitempty"`

	Error string `json:"error,omitempty"`
	// Message - ответ на команду (INFO).
	Message string `json:"message,omitempty"`
}

// WorldSnapshot - состояние мира на конец тика. Только для чтения.
type WorldSnapshot struct {
	Tick uint64 `json:"tick"`
	// Time - симуляционное время в секундах.
	Time float64 `json:"time"`

	Grid     GridMeta     `json:"grid"`
	Camera   CameraView   `json:"camera"`
	Entities []EntityView `json:"entities"`

	// Spawnables - сколько объектов ждёт в очереди порождения.
	Spawnables int `json:"spawnables"`
}

// GridMeta содержит размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// MapView - карта целиком: палитра и клетки построчно снизу вверх.
type MapView struct {
	Grid  GridMeta       `json:"grid"`
	Types []TileTypeView `json:"types"`
	Tiles []uint16       `json:"tiles"`
}

// TileTypeView это DTO для вида клетки.
type TileTypeView struct {
	Name    string      `json:"name"`
	Sprite  *SpriteView `json:"sprite,omitempty"`
	Damage  float64     `json:"damage,omitempty"`
	Collide bool        `json:"collide"`
}

// EntityView это DTO для сущности.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	Pos   vecmath.Vector2 `json:"pos"`
	Speed vecmath.Vector2 `json:"speed"`

	// Sprite отсутствует, если сущности нечего рисовать.
	Sprite *SpriteView `json:"sprite,omitempty"`

	// Health есть только у персонажей.
	Health *float64 `json:"health,omitempty"`
	Slot   *int     `json:"slot,omitempty"`
}

// SpriteView - что и откуда рисовать.
type SpriteView struct {
	Sheet  string          `json:"sheet"`
	Coords [4]int          `json:"coords"`
	Size   vecmath.Vector2 `json:"size"`
}

// CameraView - окно мира для рендерера.
type CameraView struct {
	Pos         vecmath.Vector2 `json:"pos"`
	Size        float64         `json:"size"`
	AspectRatio float64         `json:"aspectRatio"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// InputPayload - состояние контроллера игрока slot (INPUT).
type InputPayload struct {
	Slot  int     `json:"slot"`
	Left  bool    `json:"left"`
	Right bool    `json:"right"`
	Up    bool    `json:"up"`
	Down  bool    `json:"down"`
	Fire  bool    `json:"fire"`
	AxisX float64 `json:"axisX"`
	AxisY float64 `json:"axisY"`
}

// AutopilotPayload включает или выключает бота для слота (AUTOPILOT).
type AutopilotPayload struct {
	Slot    int  `json:"slot"`
	Enabled bool `json:"enabled"`
}
