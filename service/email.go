package service

import (
	"fmt"
	"time"

	"sambert/config"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务（预算提醒）
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendBudgetAlert 发送预算超标提醒
// 预算上限只做提醒不做拦截：消费照常入账，仅在当月总额首次超过上限时通知
func (s *EmailService) SendBudgetAlert(toEmail, memberName, currency string, total, cap decimal.Decimal, month time.Month, year int) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}

	subject := fmt.Sprintf("【SamBert】%d-%02d 预算提醒", year, int(month))
	body := s.generateBudgetAlertBody(memberName, currency, total, cap, month, year)

	return s.sendEmail(toEmail, subject, body)
}

// generateBudgetAlertBody 生成预算提醒邮件内容
func (s *EmailService) generateBudgetAlertBody(memberName, currency string, total, cap decimal.Decimal, month time.Month, year int) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #ec4899, #db2777); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .amount-box { background: linear-gradient(135deg, #fdf2f8, #fce7f3); border: 2px dashed #ec4899; border-radius: 12px; padding: 30px; text-align: center; margin: 30px 0; }
        .amount { font-size: 32px; font-weight: bold; color: #db2777; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💕 SamBert</h1>
        </div>
        <div class="content">
            <p>Hi <strong>%s</strong>，</p>
            <p>你 %d 年 %d 月的消费已经超过预算上限：</p>
            <div class="amount-box">
                <span class="amount">%s %s / %s %s</span>
            </div>
            <p>预算上限只用于提醒，消费记录不受影响。</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© SamBert - 两个人的记账本</p>
        </div>
    </div>
</body>
</html>
`, memberName, year, int(month), currency, total.StringFixed(2), currency, cap.StringFixed(2))
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【SamBert】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果你收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— SamBert</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
