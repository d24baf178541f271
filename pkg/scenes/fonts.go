package scenes

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/utils"
)

// fontSpec 每种用途对应的字体和字号
var fontSpec = map[FontRole]struct {
	id   game.FontID
	size float64
}{
	RoleBody:     {game.FontRegular, config.FontSizeBody},
	RoleSmall:    {game.FontRegular, config.FontSizeSmall},
	RoleCardHead: {game.FontBold, config.FontSizeCardHead},
	RoleTitle:    {game.FontBold, config.FontSizeTitle},
	RoleHero:     {game.FontBold, config.FontSizeHero},
	RoleNav:      {game.FontMedium, config.FontSizeNav},
	RoleSplash:   {game.FontItalic, config.FontSizeSplash},
}

// fontSet 用 ResourceManager 的字体实现 Measurer
type fontSet struct {
	faces map[FontRole]*text.GoTextFace
}

func newFontSet(rm *game.ResourceManager) *fontSet {
	fs := &fontSet{faces: make(map[FontRole]*text.GoTextFace, len(fontSpec))}
	for role, spec := range fontSpec {
		fs.faces[role] = rm.MustFont(spec.id, spec.size)
	}
	return fs
}

func (f *fontSet) face(role FontRole) *text.GoTextFace {
	if face, ok := f.faces[role]; ok {
		return face
	}
	return f.faces[RoleBody]
}

func (f *fontSet) Wrap(s string, role FontRole, maxWidth float64) []string {
	return utils.WrapText(s, f.face(role), maxWidth)
}

func (f *fontSet) TextWidth(s string, role FontRole) float64 {
	return utils.MeasureTextWidth(s, f.face(role))
}

func (f *fontSet) LineHeight(role FontRole) float64 {
	return utils.LineHeight(f.face(role), config.LineSpacing)
}
