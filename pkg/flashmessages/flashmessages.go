package flashmessages

import (
	"doorlist.app/utils"

	"github.com/gofiber/fiber/v2"
)

// Flash mesaj anahtarları.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// FlashData bir request'te gösterilecek flash mesajları.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage mesajı session'a yazar; bir sonraki GET'te okunup silinir.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan temizler (tek kullanımlık).
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data, err
	}
	if msg, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = msg
		sess.Delete(FlashSuccessKey)
	}
	if msg, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = msg
		sess.Delete(FlashErrorKey)
	}
	if data.Success != "" || data.Error != "" {
		if err := sess.Save(); err != nil {
			return data, err
		}
	}
	return data, nil
}
