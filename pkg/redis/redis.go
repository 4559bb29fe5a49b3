package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
)

// Client Redis 클라이언트 래퍼
// Token 블랙리스트, 속도 제한, 날짜별 종목 표시 순서(휘발성 UI 상태)에 사용
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결을 생성하고 Ping 헬스 체크를 수행한다
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 블랙리스트 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID 를 블랙리스트에 추가한다. TTL 은 Token 잔여 유효 기간과 동일
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 이미 만료된 Token 은 추가할 필요 없음
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID 가 블랙리스트에 있는지 확인한다
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 속도 제한 (고정 윈도우 카운터) ──

// CheckRateLimit key 의 윈도우 내 요청 수를 증가시키고 한도 초과 여부를 반환한다
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		// 윈도우 시작 시에만 만료 설정
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// ── 날짜별 종목 표시 순서 ──
//
// 화면 표시용 순서는 영속 데이터가 아니므로 TTL 을 두고 Redis 에만 보관한다.
// Redis 미가동 시에는 호출 측이 기본 순서로 동작한다.

const eventOrderPrefix = "event_order:"
const eventOrderTTL = 24 * time.Hour

func eventOrderKey(grade int, date string) string {
	return fmt.Sprintf("%s%d:%s", eventOrderPrefix, grade, date)
}

// GetEventOrder (학년, 날짜)의 종목 표시 순서를 조회한다. 없으면 nil
func (c *Client) GetEventOrder(ctx context.Context, grade int, date string) ([]string, error) {
	raw, err := c.rdb.Get(ctx, eventOrderKey(grade, date)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var order []string
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetEventOrder (학년, 날짜)의 종목 표시 순서를 저장한다
func (c *Client) SetEventOrder(ctx context.Context, grade int, date string, order []string) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, eventOrderKey(grade, date), raw, eventOrderTTL).Err()
}

// Close Redis 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
