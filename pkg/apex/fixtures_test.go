package apex

const playerFixture = `{
  "global": {
    "name": "Some Name",
    "uid": "1009876543210",
    "avatar": "",
    "platform": "PS4",
    "level": 512,
    "toNextLevelPercent": 37,
    "internalUpdateCount": 18022,
    "bans": {"isActive": false, "remainingSeconds": 0, "lastBanReason": "NONE"},
    "rank": {"rankScore": 11250, "rankName": "Diamond", "rankDiv": 3, "ladderPosPlatform": -1, "rankImg": "https://example.test/diamond3.png", "rankedSeason": "season19_split_1"},
    "arena": {"rankScore": 0, "rankName": "Unranked", "rankDiv": 0, "ladderPosPlatform": -1, "rankImg": "https://example.test/unranked.png", "rankedSeason": "arenas15_split_1"},
    "battlepass": {"level": "34", "history": {"season1": 0, "season18": 110}},
    "badges": null
  },
  "realtime": {
    "lobbyState": "open",
    "isOnline": 1,
    "isInGame": 0,
    "canJoin": 1,
    "partyFull": 0,
    "selectedLegend": "Wraith",
    "currentState": "inLobby",
    "currentStateSinceTimestamp": 1700000100,
    "currentStateAsText": "In lobby (00:42)"
  },
  "legends": {
    "selected": {
      "legendName": "Wraith",
      "data": [
        {"name": "BR Kills", "value": 2300, "key": "kills", "global": false, "rank": {"rankPos": 10234, "topPercent": 1.2}}
      ],
      "gameInfo": {
        "skin": "Voidwalker",
        "skinRarity": "Rare",
        "frame": "Default",
        "frameRarity": "Common",
        "pose": "Default",
        "poseRarity": "Common",
        "intro": "None",
        "introRarity": "None",
        "badges": [{"name": null, "value": 0, "category": "Account Badges"}]
      },
      "imgAssets": {"icon": "https://example.test/wraith.png", "banner": "https://example.test/wraith-banner.jpg"}
    },
    "all": {
      "wraith": {"imgAssets": {"icon": "https://example.test/wraith.png", "banner": "https://example.test/wraith-banner.jpg"}},
      "madMaggie": {"imgAssets": {"icon": "https://example.test/maggie.png", "banner": "https://example.test/maggie-banner.jpg"}}
    }
  },
  "mozambiquehereInternal": {
    "isNewToDB": false,
    "claimedBy": "-1",
    "apiAccessType": "BASIC",
    "clusterID": "2",
    "rateLimit": {"maxPerSecond": 2, "currentReq": "1"},
    "clusterSrv": "MAIN"
  },
  "ALS": {"isALSDataEnabled": true},
  "total": {
    "kills": {"name": "BR Kills", "value": 4211},
    "kd": {"value": "1.42", "name": "KD"}
  }
}`

const mapFixture = `{
  "battle_royale": {
    "current": {"start": 1700000000, "end": 1700005400, "readableDateStart": "2023-11-14 22:13:20", "readableDateEnd": "2023-11-14 23:43:20", "map": "World's Edge", "code": "worlds_edge_rotation", "durationInSecs": 5400, "durationInMinutes": 90, "asset": "https://example.test/we.jpg", "remainingSecs": 1200, "remainingMins": 20, "remainingTimer": "00:20:00"},
    "next": {"start": 1700005400, "end": 1700010800, "readableDateStart": "2023-11-14 23:43:20", "readableDateEnd": "2023-11-15 01:13:20", "map": "Olympus", "code": "olympus_rotation", "durationInSecs": 5400, "durationInMinutes": 90}
  },
  "arenas": {
    "current": {"start": 1700000000, "end": 1700000900, "map": "Habitat", "code": "arenas_habitat", "durationInSecs": 900, "durationInMinutes": 15, "remainingSecs": 300, "remainingMins": 5, "remainingTimer": "00:05:00"},
    "next": {"start": 1700000900, "end": 1700001800, "map": "Encore", "code": "arenas_encore", "durationInSecs": 900, "durationInMinutes": 15}
  },
  "ranked": {
    "current": {"start": 1700000000, "end": 1700086400, "map": "Broken Moon", "code": "broken_moon_rotation", "durationInSecs": 86400, "durationInMinutes": 1440, "remainingSecs": 18720, "remainingMins": 312, "remainingTimer": "05:12:00"},
    "next": {"start": 1700086400, "end": 1700172800, "map": "King's Canyon", "code": "kings_canyon_rotation", "durationInSecs": 86400, "durationInMinutes": 1440}
  },
  "arenasRanked": {
    "current": {"start": 1700000000, "end": 1700000900, "map": "Phase Runner", "code": "arenas_phase_runner", "durationInSecs": 900, "durationInMinutes": 15, "remainingSecs": 300, "remainingMins": 5, "remainingTimer": "00:05:00"},
    "next": {"start": 1700000900, "end": 1700001800, "map": "Party Crasher", "code": "arenas_party_crasher", "durationInSecs": 900, "durationInMinutes": 15}
  },
  "control": {
    "current": {"start": 1700000000, "end": 1700003600, "map": "Barometer", "code": "control_barometer", "durationInSecs": 3600, "durationInMinutes": 60, "remainingSecs": 600, "remainingMins": 10, "remainingTimer": "00:10:00"},
    "next": {"start": 1700003600, "end": 1700007200, "map": "Lava Siphon", "code": "control_lava_siphon", "durationInSecs": 3600, "durationInMinutes": 60}
  }
}`

const craftingFixture = `[
  {
    "bundle": "daily_bundle_1",
    "start": 1700000000,
    "end": 1700086400,
    "startDate": "2023-11-14",
    "endDate": "2023-11-15",
    "bundleType": "daily",
    "bundleContent": [
      {"item": "extended_light_mag", "cost": 25, "itemType": {"name": "extended_light_mag", "rarity": "Rare", "asset": "https://example.test/mag.png", "rarityHex": "#0094FF"}},
      {"item": "shotgun_bolt", "cost": 35, "itemType": {"name": "shotgun_bolt", "rarity": "Epic", "asset": "https://example.test/bolt.png", "rarityHex": "#B200FF"}}
    ]
  },
  {
    "bundle": "weekly_bundle_1",
    "start": 1699833600,
    "end": 1700438400,
    "startDate": "2023-11-13",
    "endDate": "2023-11-20",
    "bundleType": "weekly",
    "bundleContent": [
      {"item": "backpack", "cost": 20, "itemType": {"name": "backpack", "rarity": "Common", "asset": "https://example.test/backpack.png", "rarityHex": "#808080"}},
      {"item": "gold_knockdown", "cost": 200, "itemType": {"name": "gold_knockdown", "rarity": "Legendary", "asset": "https://example.test/kd.png", "rarityHex": "#FFD700"}}
    ]
  }
]`

const storeFixture = `[
  {
    "title": "Voidwalker Bundle",
    "desc": "Skin",
    "tag": "limited",
    "purchaseLimit": 1,
    "isAvailable": true,
    "expireTimestamp": 1700500000,
    "shopType": "specials",
    "originalPrice": 2150,
    "pricing": [
      {"ref": "Apex Coins", "quantity": 1800},
      {"ref": "Crafting Metals", "quantity": 1200}
    ],
    "content": [{"ref": "wraith_skin_voidwalker", "name": "Voidwalker", "quantity": 1}],
    "offerID": "offer-1",
    "asset": "https://example.test/voidwalker.png"
  },
  {
    "title": "Legend Unlock",
    "desc": "",
    "tag": "",
    "purchaseLimit": 1,
    "isAvailable": true,
    "expireTimestamp": 1700600000,
    "shopType": "shop",
    "pricing": [{"ref": "Legend Tokens", "quantity": 12000}],
    "content": [{"ref": "legend_unlock", "name": "Legend", "quantity": 1}]
  }
]`
