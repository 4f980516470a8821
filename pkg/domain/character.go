package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// Role はキャラクターが物語の中で担う役割です。
type Role string

const (
	RoleProtagonist Role = "protagonist"
	RoleAntagonist  Role = "antagonist"
	RoleSupporting  Role = "supporting"
	RoleBackground  Role = "background"
)

// Appearance はキャラクターの外見情報を構造化して保持します。
// 人間以外（動物・ロボット等）の場合は Species 以下のフィールドを使います。
type Appearance struct {
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Build    string `json:"build,omitempty"`
	Clothing string `json:"clothing,omitempty"`
	Hair     string `json:"hair,omitempty"`
	Features string `json:"features,omitempty"`

	// 非ヒト型キャラクター用
	Species    string `json:"species,omitempty"`
	BodyType   string `json:"body_type,omitempty"`
	Texture    string `json:"texture,omitempty"`
	Coloration string `json:"coloration,omitempty"`
}

// Character はストーリーボードに登場するキャラクターの定義を保持します。
type Character struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Appearance   Appearance `json:"appearance"`
	Role         Role       `json:"role"`
	ReferenceURL string     `json:"reference_url,omitempty"` // 一貫性保持のための参照画像URL
	Seed         int64      `json:"seed,omitempty"`          // 生成時の一貫性を保つためのシード値
}

// CharactersMap はIDをキーとしたキャラクターの検索用マップなのだ。
type CharactersMap map[string]Character

// String はキャラクターの情報を文字列で返すのだ。
func (c Character) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// VisualCue はプロンプトに注入する外見記述を1本の文字列に組み立てます。
// 構造化フィールドが空の場合は Description にフォールバックします。
func (c Character) VisualCue() string {
	parts := make([]string, 0, 8)
	app := c.Appearance
	for _, p := range []string{
		app.Age, app.Gender, app.Build, app.Hair, app.Clothing, app.Features,
		app.Species, app.BodyType, app.Texture, app.Coloration,
	} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(c.Description)
	}
	return strings.Join(parts, ", ")
}

// BuildCharactersMap はスライス形式のデータを検索効率の良いマップ形式に変換するのだ。
func BuildCharactersMap(chars []Character) CharactersMap {
	m := make(CharactersMap, len(chars))
	for _, c := range chars {
		key := c.ID
		if key == "" {
			key = c.Name
		}
		m[key] = c
	}
	return m
}

// GetSeedFromName は名前から決定論的なシード値を生成します。
func GetSeedFromName(name string) int32 {
	hash := sha256.Sum256([]byte(name))
	// ハッシュの最初の4バイトを int32 に変換
	seed := int32(binary.BigEndian.Uint32(hash[:4]))
	// 画像生成側のシード値は正の数が望ましいため、最上位ビットを落とすのが安全なのだ
	return seed & 0x7FFFFFFF
}

// NewCharacter はIDと名前、説明からキャラクター構造体を生成します。
func NewCharacter(id, name, description string, role Role) Character {
	return Character{
		ID:          id,
		Name:        name,
		Description: description,
		Role:        role,
		Seed:        int64(GetSeedFromName(name)),
	}
}
