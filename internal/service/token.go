package service

import (
	"crypto/rand"
	"encoding/base32"
	"strconv"
	"strings"
	"time"
)

var tokenEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// newDeleteToken genera el capability token de un mensaje: un prefijo
// temporal en base36 más 128 bits de crypto/rand. El token completo es la
// única autorización para borrar el mensaje, así que no puede ser
// enumerable ni adivinable.
func newDeleteToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + strings.ToLower(tokenEncoding.EncodeToString(buf)), nil
}
