package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// characterPattern はキーワードパターンと、一致時に生成するキャラクターの
// 雛形を対にしたエントリーです。リストは順序が意味を持ち、先勝ちです。
type characterPattern struct {
	re          *regexp.Regexp
	name        string
	description string
	appearance  domain.Appearance
}

// characterPatterns は認識できる名詞句の辞書です。先頭から順に評価します。
var characterPatterns = []characterPattern{
	{
		re:          regexp.MustCompile(`\b(?:man|guy|hombre|señor)\b`),
		name:        "Man",
		description: "an adult man",
		appearance:  domain.Appearance{Age: "adult", Gender: "male", Build: "average build"},
	},
	{
		re:          regexp.MustCompile(`\b(?:woman|lady|girl|mujer|chica|señora)\b`),
		name:        "Woman",
		description: "an adult woman",
		appearance:  domain.Appearance{Age: "adult", Gender: "female", Build: "average build"},
	},
	{
		re:          regexp.MustCompile(`\b(?:child|kid|boy|niño|niña)\b`),
		name:        "Child",
		description: "a young child",
		appearance:  domain.Appearance{Age: "child", Build: "small"},
	},
	{
		re:          regexp.MustCompile(`\b(?:dog|puppy|perro)\b`),
		name:        "Dog",
		description: "a friendly dog",
		appearance:  domain.Appearance{Species: "dog", BodyType: "quadruped", Texture: "short fur", Coloration: "brown"},
	},
	{
		re:          regexp.MustCompile(`\b(?:cat|kitten|gato)\b`),
		name:        "Cat",
		description: "a curious cat",
		appearance:  domain.Appearance{Species: "cat", BodyType: "quadruped", Texture: "soft fur"},
	},
	{
		re:          regexp.MustCompile(`\b(?:robot|android|droid)\b`),
		name:        "Robot",
		description: "a humanoid robot",
		appearance:  domain.Appearance{Species: "robot", BodyType: "humanoid", Texture: "metallic"},
	},
	{
		re:          regexp.MustCompile(`\b(?:bird|pájaro|pajaro)\b`),
		name:        "Bird",
		description: "a small bird",
		appearance:  domain.Appearance{Species: "bird", BodyType: "winged", Coloration: "colorful feathers"},
	},
	{
		re:          regexp.MustCompile(`\b(?:dragon|dragón)\b`),
		name:        "Dragon",
		description: "a great dragon",
		appearance:  domain.Appearance{Species: "dragon", BodyType: "winged reptile", Texture: "scales"},
	},
}

// ExtractCharacters は入力テキストからキャラクター一覧を抽出します。
// パターンごとに最初の一致のみを採用し、最初に見つかったキャラクターが
// protagonist、以降は supporting になります。一致が1件もない場合は、
// 入力原文をそのまま説明文としたフォールバックキャラクターを1体合成します。
// これは抽出に失敗してもユーザーの意図を失わないための仕様です。
func ExtractCharacters(input string) []domain.Character {
	lowered := strings.ToLower(input)

	var chars []domain.Character
	for _, p := range characterPatterns {
		if !p.re.MatchString(lowered) {
			continue
		}
		role := domain.RoleSupporting
		if len(chars) == 0 {
			role = domain.RoleProtagonist
		}
		c := domain.NewCharacter(
			fmt.Sprintf("char-%d", len(chars)+1),
			p.name,
			p.description,
			role,
		)
		c.Appearance = p.appearance
		chars = append(chars, c)
	}

	if len(chars) == 0 {
		// フォールバック: 説明文は入力原文そのまま（汎用プレースホルダーにしない）
		fallback := domain.NewCharacter("char-1", "Main Character", strings.TrimSpace(input), domain.RoleProtagonist)
		chars = append(chars, fallback)
	}

	return chars
}
