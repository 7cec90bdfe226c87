package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // Cache instances for different data types
    ListingCache      *cache.Cache
    AnnouncementCache *cache.Cache
)

const (
    // Cache durations. Listings change rarely; announcements are cached
    // just long enough to absorb list reloads.
    listingCacheDuration      = 5 * time.Minute
    announcementCacheDuration = 1 * time.Minute

    // Cleanup intervals
    listingCleanupInterval      = 10 * time.Minute
    announcementCleanupInterval = 5 * time.Minute
)

func InitCache() {
    ListingCache = cache.New(listingCacheDuration, listingCleanupInterval)
    AnnouncementCache = cache.New(announcementCacheDuration, announcementCleanupInterval)
}

func ClearAllCaches() {
    ListingCache.Flush()
    AnnouncementCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
