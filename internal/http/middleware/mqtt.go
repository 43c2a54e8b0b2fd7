package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

var (
	mqttClient mqtt.Client
	brokerURL  = "tcp://0.0.0.0:1883" // Default MQTT broker URL
)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL allows configuration of the MQTT broker URL
func SetBrokerURL(url string) {
	brokerURL = url
}

// InitMQTT connects the server's publishing client. Devices subscribe to
// their organization topics to hear about polling and schedule changes
// between check-ins; everything still works without a broker, devices just
// wait for their next poll.
func InitMQTT() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID("signage-server")
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		mqttClient = nil
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}
	return nil
}

func CleanupMQTT() {
	if mqttClient != nil {
		mqttClient.Disconnect(250)
		mqttClient = nil
	}
}

func publish(topic string, payload any) {
	if mqttClient == nil {
		log.Debug().Str("topic", topic).Msg("MQTT not connected, skipping publish")
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to marshal MQTT payload")
		return
	}
	if token := mqttClient.Publish(topic, 1, false, raw); token.Wait() && token.Error() != nil {
		log.Warn().Err(token.Error()).Str("topic", topic).Msg("failed to publish MQTT message")
	}
}

// NotifyEmergencyChanged tells every device in the organization that the
// emergency override flipped, so online screens pick up the new interval
// without waiting out their current one.
func NotifyEmergencyChanged(organizationID int, active bool, intervalSeconds int) {
	publish(fmt.Sprintf("org/%d/polling", organizationID), map[string]any{
		"type":             "emergency_changed",
		"active":           active,
		"interval_seconds": intervalSeconds,
		"timestamp":        time.Now().Unix(),
	})
}

// NotifyScheduleChanged nudges the organization's devices to re-check their
// content assignment after a schedule write.
func NotifyScheduleChanged(organizationID, scheduleID int) {
	publish(fmt.Sprintf("org/%d/schedules", organizationID), map[string]any{
		"type":        "schedule_changed",
		"schedule_id": scheduleID,
		"timestamp":   time.Now().Unix(),
	})
}
