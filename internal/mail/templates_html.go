package mail

const templateSource = `
{{define "footer"}}
<div style="border-top: 1px solid #eee; padding-top: 20px; text-align: center; color: #999; font-size: 14px;">
  <p>Bu e-posta StajDefterim uygulaması tarafından otomatik olarak gönderilmiştir.</p>
  <p>Bildirim ayarlarınızı uygulama içinden değiştirebilirsiniz.</p>
</div>
{{end}}

{{define "reminder"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #4CAF50, #45a049); color: white; padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="margin: 0; font-size: 28px;">📋 StajDefterim</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Hatırlatıcı Bildirimi</p>
  </div>
  <div style="background: #f9f9f9; padding: 25px; border-radius: 8px; margin-bottom: 25px;">
    <h2 style="color: #333; margin-top: 0; font-size: 22px;">🔔 {{.Title}}</h2>
    {{if .Description}}<p style="color: #666; line-height: 1.6; font-size: 16px;">{{.Description}}</p>{{end}}
    <div style="margin-top: 20px; padding: 15px; background: white; border-radius: 6px; border-left: 4px solid #4CAF50;">
      <p style="margin: 0; color: #333;"><strong>📅 Hatırlatıcı Zamanı:</strong> {{formatDateTime .ReminderDate}}</p>
      {{if .Internship}}<p style="margin: 5px 0 0 0; color: #666;"><strong>🏢 Staj:</strong> {{.Internship.CompanyName}} - {{.Internship.Department}}</p>{{end}}
    </div>
  </div>
  <div style="text-align: center; margin-bottom: 30px;">
    <a href="exp://stajdefterim" style="display: inline-block; background: #4CAF50; color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px;">📱 Uygulamayı Aç</a>
  </div>
  {{template "footer"}}
</div>
{{end}}

{{define "taskDeadline"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #FF9800, #F57C00); color: white; padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="margin: 0; font-size: 28px;">⚡ StajDefterim</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Görev Teslim Hatırlatıcısı</p>
  </div>
  <div style="background: #fff3e0; padding: 25px; border-radius: 8px; margin-bottom: 25px; border-left: 4px solid #FF9800;">
    <h2 style="color: #333; margin-top: 0; font-size: 22px;">{{.PriorityMarker}} {{.Title}}</h2>
    {{if .Description}}<p style="color: #666; line-height: 1.6; font-size: 16px;">{{.Description}}</p>{{end}}
    <div style="margin-top: 20px;">
      <div style="display: inline-block; background: white; padding: 10px 15px; border-radius: 6px; margin: 5px; border: 2px solid #FF9800;">
        <strong style="color: #FF9800;">📅 Teslim Tarihi:</strong> {{formatDate .EndDate}}
      </div>
      <div style="display: inline-block; background: white; padding: 10px 15px; border-radius: 6px; margin: 5px; border: 2px solid #FF9800;">
        <strong style="color: #FF9800;">🚨 Öncelik:</strong> {{upper .Priority}}
      </div>
    </div>
    <div style="margin-top: 20px; padding: 15px; background: white; border-radius: 6px;">
      <h3 style="color: #FF9800; margin-top: 0; font-size: 18px;">{{.Note}}</h3>
      {{if .Internship}}<p style="margin: 5px 0 0 0; color: #666;"><strong>🏢 Staj:</strong> {{.Internship.CompanyName}} - {{.Internship.Department}}</p>{{end}}
    </div>
  </div>
  <div style="text-align: center; margin-bottom: 30px;">
    <a href="exp://stajdefterim" style="display: inline-block; background: #FF9800; color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px;">📝 Görevi Tamamla</a>
  </div>
  {{template "footer"}}
</div>
{{end}}

{{define "dailySummary"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #2196F3, #1976D2); color: white; padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="margin: 0; font-size: 28px;">📊 StajDefterim</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Günlük Staj Özeti</p>
  </div>
  <div style="background: #f5f5f5; padding: 25px; border-radius: 8px; margin-bottom: 25px;">
    <h2 style="color: #333; margin-top: 0; font-size: 22px;">🏢 {{.Internship.CompanyName}} - {{.Internship.Department}}</h2>
    <p style="color: #666; margin-bottom: 20px;">📅 {{formatDate .Date}} - Gün {{.DayNumber}}</p>
    <div style="display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 15px; margin: 20px 0;">
      <div style="background: white; padding: 15px; border-radius: 6px; text-align: center; border-left: 4px solid #4CAF50;">
        <div style="font-size: 24px; font-weight: bold; color: #4CAF50;">{{.CompletedTasks}}</div>
        <div style="color: #666; font-size: 14px;">Tamamlanan Görev</div>
      </div>
      <div style="background: white; padding: 15px; border-radius: 6px; text-align: center; border-left: 4px solid #2196F3;">
        <div style="font-size: 24px; font-weight: bold; color: #2196F3;">{{.TotalNotes}}</div>
        <div style="color: #666; font-size: 14px;">Not Sayısı</div>
      </div>
      <div style="background: white; padding: 15px; border-radius: 6px; text-align: center; border-left: 4px solid #FF9800;">
        <div style="font-size: 24px; font-weight: bold; color: #FF9800;">{{.EarnedExp}}</div>
        <div style="color: #666; font-size: 14px;">Kazanılan EXP</div>
      </div>
    </div>
    {{with .VisibleNotes}}
    <div style="margin-top: 25px;">
      <h3 style="color: #333; margin-bottom: 15px;">📝 Bugünkü Notlar</h3>
      {{range .}}
      <div style="background: white; padding: 15px; border-radius: 6px; margin-bottom: 10px; border-left: 4px solid #2196F3;">
        <h4 style="margin: 0 0 8px 0; color: #333; font-size: 16px;">{{.Topic}}</h4>
        <p style="margin: 0; color: #666; line-height: 1.4;">{{.Content}}</p>
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
  <div style="text-align: center; margin-bottom: 30px;">
    <a href="exp://stajdefterim" style="display: inline-block; background: #2196F3; color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px;">📱 Detayları Gör</a>
  </div>
  {{template "footer"}}
</div>
{{end}}

{{define "test"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #9C27B0, #7B1FA2); color: white; padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="margin: 0; font-size: 28px;">🧪 StajDefterim</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Test E-postası</p>
  </div>
  <div style="background: #f3e5f5; padding: 25px; border-radius: 8px; margin-bottom: 25px; text-align: center;">
    <h2 style="color: #333; margin-top: 0; font-size: 22px;">✅ E-posta Sistemi Çalışıyor!</h2>
    <p style="color: #666; line-height: 1.6; font-size: 16px;">
      Bu test e-postasını {{formatDateTime .SentAt}} tarihinde aldıysanız,
      e-posta bildirim sistemi düzgün çalışıyor demektir.
    </p>
    <div style="margin: 20px 0; padding: 15px; background: white; border-radius: 6px; border-left: 4px solid #9C27B0;">
      <p style="margin: 0; color: #333;"><strong>👤 Kullanıcı:</strong> {{.Name}}</p>
      <p style="margin: 5px 0 0 0; color: #666;"><strong>📧 E-posta:</strong> {{.Email}}</p>
    </div>
  </div>
  <div style="text-align: center; margin-bottom: 30px;">
    <a href="exp://stajdefterim" style="display: inline-block; background: #9C27B0; color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; font-size: 16px;">📱 Uygulamaya Dön</a>
  </div>
  {{template "footer"}}
</div>
{{end}}
`
