package config

// Тексты сообщений для игрока.
const (
	MsgUnitUnderway      = "%s underway!"
	MsgNotEnoughPoints   = "Not enough harvest points to send a %s."
	MsgNudge             = "Regather the vines! Wait for more harvest points."
	MsgVictory           = "Sanctuary secured! The trellis flourishes."
	MsgDefeat            = "The warding towers held. Regrow your strategy."
	OverlayVictoryTitle  = "Sanctuary Secured"
	OverlayVictoryDetail = "Every family reached the glowing grove."
	OverlayDefeatTitle   = "Trellis Overrun"
	OverlayDefeatDetail  = "Tower thorns scattered the caravan this time."
	OverlayRestartHint   = "Tap R or press the button below to rally again."
)
