package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// 商品ID。
// サーバー側はstringと数値の両方を返すことがあるので、
// 取り込み時にstringへ正規化する。
type ItemID string

func (id ItemID) String() string {
	return string(id)
}

// 前後空白を除いた正規形
func (id ItemID) Normalized() ItemID {
	return ItemID(strings.TrimSpace(string(id)))
}

// stringまたは数値を受け付ける
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s).Normalized()
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// 数値IDからの変換
func ItemIDFromInt(n int64) ItemID {
	return ItemID(strconv.FormatInt(n, 10))
}
